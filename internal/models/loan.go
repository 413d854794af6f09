package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the database representation of a loan.
// DueDate and AccountID are nullable columns.
type Loan struct {
	LoanID           string          `db:"loan_id"`
	UserID           string          `db:"user_id"`
	CounterpartyName string          `db:"counterparty_name"`
	LoanType         string          `db:"loan_type"`
	PrincipalAmount  decimal.Decimal `db:"principal_amount"`
	InterestRate     decimal.Decimal `db:"interest_rate"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	PaidAmount       decimal.Decimal `db:"paid_amount"`
	RemainingAmount  decimal.Decimal `db:"remaining_amount"`
	CurrencyCode     string          `db:"currency_code"`
	Status           string          `db:"status"`
	LoanDate         time.Time       `db:"loan_date"`
	DueDate          *time.Time      `db:"due_date"`
	IsUrgent         bool            `db:"is_urgent"`
	AccountID        *string         `db:"account_id"`
	AuditFields
}
