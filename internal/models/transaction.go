package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a money movement.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	UserID             string          `db:"user_id"`
	AccountID          string          `db:"account_id"`
	CategoryID         *string         `db:"category_id"`
	Amount             decimal.Decimal `db:"amount"`
	TransactionType    string          `db:"transaction_type"`
	CurrencyCode       string          `db:"currency_code"`
	Description        string          `db:"description"`
	TransactionDate    time.Time       `db:"transaction_date"`
	IsRecurring        bool            `db:"is_recurring"`
	RecurringExpenseID *string         `db:"recurring_expense_id"`
	AuditFields
}
