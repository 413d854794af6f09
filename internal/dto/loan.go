package dto

import (
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to create a new loan.
// TotalAmount is derived server-side from principal and interest rate and
// never accepted from the client.
type CreateLoanRequest struct {
	CounterpartyName string           `json:"counterpartyName" binding:"required"`
	LoanType         domain.LoanType  `json:"loanType" binding:"required,oneof=LENT BORROWED"`
	PrincipalAmount  decimal.Decimal  `json:"principalAmount" binding:"required"`
	InterestRate     *decimal.Decimal `json:"interestRate"` // Optional, percentage, >= 0
	CurrencyCode     string           `json:"currencyCode" binding:"required,len=3"`
	LoanDate         time.Time        `json:"loanDate" binding:"required"`
	DueDate          *time.Time       `json:"dueDate"`
	AccountID        *string          `json:"accountID"` // Optional linked account to move money through
}

// RecordLoanPaymentRequest records a payment against a loan using its
// linked account (if any).
type RecordLoanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RecordInstallmentPaymentRequest records a payment against a loan from an
// explicitly chosen account, with an optional note and payment date.
type RecordInstallmentPaymentRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Note      string          `json:"note"`
	PaidAt    *time.Time      `json:"paidAt"` // Defaults to now
}

// ListLoansParams filters loan listings.
type ListLoansParams struct {
	LoanType *domain.LoanType   `form:"type"`
	Status   *domain.LoanStatus `form:"status"`
	Overdue  bool               `form:"overdue"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID           string            `json:"loanID"`
	CounterpartyName string            `json:"counterpartyName"`
	LoanType         domain.LoanType   `json:"loanType"`
	PrincipalAmount  decimal.Decimal   `json:"principalAmount"`
	InterestRate     decimal.Decimal   `json:"interestRate"`
	TotalAmount      decimal.Decimal   `json:"totalAmount"`
	PaidAmount       decimal.Decimal   `json:"paidAmount"`
	RemainingAmount  decimal.Decimal   `json:"remainingAmount"`
	CurrencyCode     string            `json:"currencyCode"`
	Status           domain.LoanStatus `json:"status"`
	LoanDate         time.Time         `json:"loanDate"`
	DueDate          *time.Time        `json:"dueDate"`
	IsUrgent         bool              `json:"isUrgent"`
	AccountID        *string           `json:"accountID"`
	CreatedAt        time.Time         `json:"createdAt"`
	LastUpdatedAt    time.Time         `json:"lastUpdatedAt"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:           l.LoanID,
		CounterpartyName: l.CounterpartyName,
		LoanType:         l.LoanType,
		PrincipalAmount:  l.PrincipalAmount,
		InterestRate:     l.InterestRate,
		TotalAmount:      l.TotalAmount,
		PaidAmount:       l.PaidAmount,
		RemainingAmount:  l.RemainingAmount,
		CurrencyCode:     l.CurrencyCode,
		Status:           l.Status,
		LoanDate:         l.LoanDate,
		DueDate:          l.DueDate,
		IsUrgent:         l.IsUrgent,
		AccountID:        l.AccountID,
		CreatedAt:        l.CreatedAt,
		LastUpdatedAt:    l.LastUpdatedAt,
	}
}

// ToListLoanResponse converts a slice of domain.Loan to response DTOs.
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = ToLoanResponse(&l)
	}
	return res
}
