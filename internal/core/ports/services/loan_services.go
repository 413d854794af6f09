package services

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
)

// LoanSvcFacade owns loan creation, payment recording and the loan status
// state machine. Money movements on a linked account go through the ledger
// within the operation's transaction.
type LoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error)
	GetLoanByID(ctx context.Context, loanID string, userID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, userID string, params dto.ListLoansParams) ([]domain.Loan, error)
	RecordPayment(ctx context.Context, loanID string, req dto.RecordLoanPaymentRequest, userID string) (*domain.Loan, error)
	RecordInstallmentPayment(ctx context.Context, loanID string, req dto.RecordInstallmentPaymentRequest, userID string) (*domain.Loan, error)
	MarkAsUrgent(ctx context.Context, loanID string, userID string) (*domain.Loan, error)
	MarkAsNotUrgent(ctx context.Context, loanID string, userID string) (*domain.Loan, error)
}
