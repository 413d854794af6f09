package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Transaction is a single money movement on an account. The ledger core
// appends transactions (e.g. when a recurring expense is paid) but never
// updates or deletes them.
type Transaction struct {
	TransactionID      string          `json:"transactionID"` // Primary Key (UUID)
	UserID             string          `json:"userID"`        // Owning user (NON-NULL)
	AccountID          string          `json:"accountID"`
	CategoryID         *string         `json:"categoryID"` // Optional
	Amount             decimal.Decimal `json:"amount"`     // Positive value
	TransactionType    TransactionType `json:"transactionType"`
	CurrencyCode       string          `json:"currencyCode"`
	Description        string          `json:"description"`
	TransactionDate    time.Time       `json:"transactionDate"`
	IsRecurring        bool            `json:"isRecurring"` // Generated by recurring-expense processing
	RecurringExpenseID *string         `json:"recurringExpenseID"`
	AuditFields
}
