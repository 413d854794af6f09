package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType indicates the direction of a loan from the owner's perspective.
type LoanType string

const (
	Lent     LoanType = "LENT"
	Borrowed LoanType = "BORROWED"
)

// LoanStatus tracks the repayment lifecycle of a loan.
// Transitions are monotone in PaidAmount: ACTIVE -> PARTIALLY_PAID -> PAID_OFF.
// PAID_OFF is terminal.
type LoanStatus string

const (
	LoanActive        LoanStatus = "ACTIVE"
	LoanPartiallyPaid LoanStatus = "PARTIALLY_PAID"
	LoanPaidOff       LoanStatus = "PAID_OFF"
)

// Loan represents money lent to or borrowed from a counterparty.
//
// TotalAmount is fixed at creation: principal * (1 + rate/100) when the
// interest rate is positive, otherwise the principal itself. After any
// committed payment, RemainingAmount = TotalAmount - PaidAmount holds
// exactly.
type Loan struct {
	LoanID           string          `json:"loanID"` // Primary Key (UUID)
	UserID           string          `json:"userID"` // Owning user (NON-NULL)
	CounterpartyName string          `json:"counterpartyName"`
	LoanType         LoanType        `json:"loanType"`
	PrincipalAmount  decimal.Decimal `json:"principalAmount"`
	InterestRate     decimal.Decimal `json:"interestRate"` // Simple percentage, >= 0
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	CurrencyCode     string          `json:"currencyCode"`
	Status           LoanStatus      `json:"status"`
	LoanDate         time.Time       `json:"loanDate"`
	DueDate          *time.Time      `json:"dueDate"`   // Optional
	IsUrgent         bool            `json:"isUrgent"`  // Flag only, no balance effect
	AccountID        *string         `json:"accountID"` // Optional linked account, FK by id
	AuditFields
}

// IsOverdue reports whether the loan is past its due date and still owed.
func (l *Loan) IsOverdue(asOf time.Time) bool {
	return l.DueDate != nil && l.DueDate.Before(asOf) && l.Status != LoanPaidOff
}
