package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// loanService owns loan creation, payment recording and the loan status
// state machine. Money moves through the ledger inside the operation's
// transaction: either the loan state change, the balance mutation and the
// transaction record all commit, or none do.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryWithTx
	ledger   portssvc.LedgerSvc
	txnSink  portsrepo.TransactionSink
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryWithTx, ledger portssvc.LedgerSvc, txnSink portsrepo.TransactionSink) portssvc.LoanSvcFacade {
	return &loanService{
		loanRepo: loanRepo,
		ledger:   ledger,
		txnSink:  txnSink,
	}
}

// Ensure loanService implements the LoanSvcFacade interface
var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// computeTotalAmount derives the fixed total owed from principal and rate:
// principal * (1 + rate/100) when rate > 0, otherwise the principal.
func computeTotalAmount(principal, rate decimal.Decimal) decimal.Decimal {
	if rate.IsPositive() {
		return principal.Mul(decimal.NewFromInt(1).Add(rate.Div(hundred)))
	}
	return principal
}

func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	if req.PrincipalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal amount must be positive", apperrors.ErrValidation)
	}

	rate := decimal.Zero
	if req.InterestRate != nil {
		if req.InterestRate.IsNegative() {
			return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
		}
		rate = *req.InterestRate
	}

	if req.LoanType != domain.Lent && req.LoanType != domain.Borrowed {
		return nil, fmt.Errorf("%w: unknown loan type %q", apperrors.ErrValidation, req.LoanType)
	}

	now := time.Now().UTC()
	totalAmount := computeTotalAmount(req.PrincipalAmount, rate)

	loan := domain.Loan{
		LoanID:           uuid.NewString(),
		UserID:           userID,
		CounterpartyName: req.CounterpartyName,
		LoanType:         req.LoanType,
		PrincipalAmount:  req.PrincipalAmount,
		InterestRate:     rate,
		TotalAmount:      totalAmount,
		PaidAmount:       decimal.Zero,
		RemainingAmount:  totalAmount,
		CurrencyCode:     req.CurrencyCode,
		Status:           domain.LoanActive,
		LoanDate:         req.LoanDate,
		DueDate:          req.DueDate,
		AccountID:        req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	tx, err := s.loanRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.loanRepo.Rollback(ctx, tx) }()

	// Move the principal through the linked account, if any. Lending money
	// out requires sufficient funds; receiving borrowed money cannot fail.
	if req.AccountID != nil {
		switch req.LoanType {
		case domain.Lent:
			if _, err := s.ledger.SubtractFromBalance(ctx, tx, userID, *req.AccountID, req.PrincipalAmount); err != nil {
				return nil, err
			}
		case domain.Borrowed:
			if _, err := s.ledger.AddToBalance(ctx, tx, userID, *req.AccountID, req.PrincipalAmount); err != nil {
				return nil, err
			}
		}
	}

	if err := s.loanRepo.SaveLoanInTx(ctx, tx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	if err := s.loanRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Loan created",
		slog.String("loan_id", loan.LoanID),
		slog.String("loan_type", string(loan.LoanType)),
		slog.String("total_amount", loan.TotalAmount.String()))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID string, userID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan by ID", slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, userID string, params dto.ListLoansParams) ([]domain.Loan, error) {
	var (
		loans []domain.Loan
		err   error
	)
	switch {
	case params.Overdue:
		loans, err = s.loanRepo.ListOverdueLoansByUser(ctx, userID, time.Now().UTC())
	case params.LoanType != nil:
		loans, err = s.loanRepo.ListLoansByUserAndType(ctx, userID, *params.LoanType)
	case params.Status != nil:
		loans, err = s.loanRepo.ListLoansByUserAndStatus(ctx, userID, *params.Status)
	default:
		loans, err = s.loanRepo.ListLoansByUser(ctx, userID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	return loans, nil
}

// RecordPayment records a payment against a loan, moving money through the
// loan's linked account when one is set.
func (s *loanService) RecordPayment(ctx context.Context, loanID string, req dto.RecordLoanPaymentRequest, userID string) (*domain.Loan, error) {
	return s.applyPayment(ctx, loanID, nil, req.Amount, "", time.Now().UTC(), userID)
}

// RecordInstallmentPayment records a payment from an explicitly chosen
// account, with an optional note and payment date.
func (s *loanService) RecordInstallmentPayment(ctx context.Context, loanID string, req dto.RecordInstallmentPaymentRequest, userID string) (*domain.Loan, error) {
	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	return s.applyPayment(ctx, loanID, &req.AccountID, req.Amount, req.Note, paidAt, userID)
}

// applyPayment recomputes paid/remaining amounts, advances the status
// machine and applies the balance side effect. overrideAccountID, when
// set, is paid through instead of the loan's linked account.
//
// Status transitions are monotone in PaidAmount: remaining <= 0 yields
// PAID_OFF, any positive paid amount below that yields PARTIALLY_PAID.
// Overpayment is tolerated: remaining may go negative, status still lands
// on PAID_OFF.
func (s *loanService) applyPayment(ctx context.Context, loanID string, overrideAccountID *string, amount decimal.Decimal, note string, paidAt time.Time, userID string) (*domain.Loan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.loanRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.loanRepo.Rollback(ctx, tx) }()

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, err
	}

	if loan.Status == domain.LoanPaidOff {
		return nil, fmt.Errorf("%w: loan is already paid off", apperrors.ErrValidation)
	}

	accountID := loan.AccountID
	if overrideAccountID != nil {
		accountID = overrideAccountID
	}

	// Balance side effect depends on direction: a payment on money lent
	// out comes back in, a payment on money borrowed goes out and needs
	// sufficient funds.
	if accountID != nil {
		switch loan.LoanType {
		case domain.Lent:
			if _, err := s.ledger.AddToBalance(ctx, tx, userID, *accountID, amount); err != nil {
				return nil, err
			}
		case domain.Borrowed:
			if _, err := s.ledger.SubtractFromBalance(ctx, tx, userID, *accountID, amount); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	loan.PaidAmount = loan.PaidAmount.Add(amount)
	loan.RemainingAmount = loan.TotalAmount.Sub(loan.PaidAmount)
	if loan.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		loan.Status = domain.LoanPaidOff
	} else if loan.PaidAmount.IsPositive() {
		loan.Status = domain.LoanPartiallyPaid
	}
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID

	if err := s.loanRepo.UpdateLoanInTx(ctx, tx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to update loan payment state", slog.String("loan_id", loanID))
		return nil, err
	}

	// Record the movement in the transaction log when an account was involved.
	if accountID != nil {
		txnType := domain.Income
		if loan.LoanType == domain.Borrowed {
			txnType = domain.Expense
		}
		description := note
		if description == "" {
			description = fmt.Sprintf("Loan payment: %s", loan.CounterpartyName)
		}
		txn := domain.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			AccountID:       *accountID,
			Amount:          amount,
			TransactionType: txnType,
			CurrencyCode:    loan.CurrencyCode,
			Description:     description,
			TransactionDate: paidAt,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.txnSink.AppendTransactionInTx(ctx, tx, txn); err != nil {
			s.LogError(ctx, err, "Failed to append loan payment transaction", slog.String("loan_id", loanID))
			return nil, err
		}
	}

	if err := s.loanRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Loan payment recorded",
		slog.String("loan_id", loanID),
		slog.String("amount", amount.String()),
		slog.String("status", string(loan.Status)))
	return loan, nil
}

func (s *loanService) MarkAsUrgent(ctx context.Context, loanID string, userID string) (*domain.Loan, error) {
	return s.setUrgency(ctx, loanID, userID, true)
}

func (s *loanService) MarkAsNotUrgent(ctx context.Context, loanID string, userID string) (*domain.Loan, error) {
	return s.setUrgency(ctx, loanID, userID, false)
}

// setUrgency flips the urgency flag. Pure flag flip: no balance effect,
// idempotent.
func (s *loanService) setUrgency(ctx context.Context, loanID string, userID string, urgent bool) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, err
	}

	if loan.IsUrgent == urgent {
		return loan, nil
	}

	now := time.Now().UTC()
	if err := s.loanRepo.UpdateLoanUrgency(ctx, loanID, userID, urgent, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update loan urgency", slog.String("loan_id", loanID))
		return nil, err
	}

	loan.IsUrgent = urgent
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID
	return loan, nil
}
