package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the repeat interval of a recurring expense.
type Frequency string

const (
	Daily     Frequency = "DAILY"
	Weekly    Frequency = "WEEKLY"
	Monthly   Frequency = "MONTHLY"
	Quarterly Frequency = "QUARTERLY"
	Yearly    Frequency = "YEARLY"
)

// RecurringExpenseStatus tracks the lifecycle of a recurring expense.
// CANCELLED and COMPLETED are terminal for payment processing; PAUSED
// halts due-date advancement until resumed.
type RecurringExpenseStatus string

const (
	RecurringActive    RecurringExpenseStatus = "ACTIVE"
	RecurringPaused    RecurringExpenseStatus = "PAUSED"
	RecurringCancelled RecurringExpenseStatus = "CANCELLED"
	RecurringCompleted RecurringExpenseStatus = "COMPLETED"
)

// RecurringExpense is a template for a periodically repeating expense.
// Each paid cycle advances NextDueDate by one frequency step and records
// LastPaidDate; related Account and Category are referenced by id, never
// embedded.
type RecurringExpense struct {
	RecurringExpenseID string          `json:"recurringExpenseID"` // Primary Key (UUID)
	UserID             string          `json:"userID"`             // Owning user (NON-NULL)
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	CurrencyCode       string          `json:"currencyCode"`
	Frequency          Frequency       `json:"frequency"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            *time.Time      `json:"endDate"` // Optional
	NextDueDate        time.Time       `json:"nextDueDate"`
	LastPaidDate       *time.Time      `json:"lastPaidDate"`
	Status             RecurringExpenseStatus `json:"status"`
	IsAutoPay          bool            `json:"isAutoPay"` // Paid automatically during batch processing
	AccountID          *string         `json:"accountID"` // Optional linked account
	CategoryID         *string         `json:"categoryID"`
	AuditFields
}

// IsPayable reports whether the expense may be marked as paid in its
// current status.
func (r *RecurringExpense) IsPayable() bool {
	return r.Status == RecurringActive
}
