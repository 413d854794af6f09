package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringExpense is the database representation of a recurring expense
// template. EndDate, LastPaidDate, AccountID and CategoryID are nullable.
type RecurringExpense struct {
	RecurringExpenseID string          `db:"recurring_expense_id"`
	UserID             string          `db:"user_id"`
	Name               string          `db:"name"`
	Amount             decimal.Decimal `db:"amount"`
	CurrencyCode       string          `db:"currency_code"`
	Frequency          string          `db:"frequency"`
	StartDate          time.Time       `db:"start_date"`
	EndDate            *time.Time      `db:"end_date"`
	NextDueDate        time.Time       `db:"next_due_date"`
	LastPaidDate       *time.Time      `db:"last_paid_date"`
	Status             string          `db:"status"`
	IsAutoPay          bool            `db:"is_auto_pay"`
	AccountID          *string         `db:"account_id"`
	CategoryID         *string         `db:"category_id"`
	AuditFields
}
