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

// recurringExpenseService owns due-date scheduling, payment marking and
// the recurring-expense lifecycle. Paying an expense advances its due
// date, emits an EXPENSE transaction and debits the linked account, all in
// one unit of work.
//
// MarkAsPaid is not idempotent per cycle: paying the same expense twice
// advances the due date and debits the account twice. Callers must not
// retry blindly.
type recurringExpenseService struct {
	BaseService
	recurringRepo portsrepo.RecurringExpenseRepositoryWithTx
	ledger        portssvc.LedgerSvc
	txnSink       portsrepo.TransactionSink
}

// NewRecurringExpenseService creates a new recurring expense service.
func NewRecurringExpenseService(recurringRepo portsrepo.RecurringExpenseRepositoryWithTx, ledger portssvc.LedgerSvc, txnSink portsrepo.TransactionSink) portssvc.RecurringExpenseSvcFacade {
	return &recurringExpenseService{
		recurringRepo: recurringRepo,
		ledger:        ledger,
		txnSink:       txnSink,
	}
}

// Ensure recurringExpenseService implements the facade interface
var _ portssvc.RecurringExpenseSvcFacade = (*recurringExpenseService)(nil)

func (s *recurringExpenseService) CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, userID string) (*domain.RecurringExpense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", apperrors.ErrValidation)
	}

	nextDue, err := CalculateNextDueDate(req.StartDate, req.Frequency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.RecurringExpense{
		RecurringExpenseID: uuid.NewString(),
		UserID:             userID,
		Name:               req.Name,
		Amount:             req.Amount,
		CurrencyCode:       req.CurrencyCode,
		Frequency:          req.Frequency,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		NextDueDate:        nextDue,
		Status:             domain.RecurringActive,
		IsAutoPay:          req.IsAutoPay,
		AccountID:          req.AccountID,
		CategoryID:         req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.recurringRepo.SaveRecurringExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save recurring expense",
			slog.String("recurring_expense_id", expense.RecurringExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Recurring expense created",
		slog.String("recurring_expense_id", expense.RecurringExpenseID),
		slog.String("frequency", string(expense.Frequency)),
		slog.String("next_due_date", expense.NextDueDate.Format(time.DateOnly)))
	return &expense, nil
}

func (s *recurringExpenseService) GetRecurringExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	expense, err := s.recurringRepo.FindRecurringExpenseByID(ctx, expenseID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find recurring expense",
				slog.String("recurring_expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *recurringExpenseService) ListRecurringExpenses(ctx context.Context, userID string) ([]domain.RecurringExpense, error) {
	expenses, err := s.recurringRepo.ListRecurringExpensesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring expenses")
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.RecurringExpense{}
	}
	return expenses, nil
}

// MarkAsPaid pays one cycle of the expense dated today.
func (s *recurringExpenseService) MarkAsPaid(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	return s.markAsPaidOn(ctx, expenseID, userID, time.Now().UTC())
}

// markAsPaidOn performs the paid-cycle processing as one unit of work:
// set lastPaidDate, advance nextDueDate by one frequency step, append the
// EXPENSE transaction and debit the linked account.
func (s *recurringExpenseService) markAsPaidOn(ctx context.Context, expenseID string, userID string, paidOn time.Time) (*domain.RecurringExpense, error) {
	tx, err := s.recurringRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.recurringRepo.Rollback(ctx, tx) }()

	expense, err := s.recurringRepo.FindRecurringExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	// PAUSED is not payable; resume first. CANCELLED and COMPLETED are terminal.
	if !expense.IsPayable() {
		return nil, fmt.Errorf("%w: recurring expense is %s and cannot be paid",
			apperrors.ErrValidation, expense.Status)
	}

	nextDue, err := CalculateNextDueDate(paidOn, expense.Frequency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense.LastPaidDate = &paidOn
	expense.NextDueDate = nextDue
	if expense.EndDate != nil && nextDue.After(*expense.EndDate) {
		expense.Status = domain.RecurringCompleted
	}
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	// Debit the linked account and record the expense in the transaction
	// log. The funds check applies here just as it does for loan payments.
	if expense.AccountID != nil {
		if _, err := s.ledger.SubtractFromBalance(ctx, tx, userID, *expense.AccountID, expense.Amount); err != nil {
			return nil, err
		}

		txn := domain.Transaction{
			TransactionID:      uuid.NewString(),
			UserID:             userID,
			AccountID:          *expense.AccountID,
			CategoryID:         expense.CategoryID,
			Amount:             expense.Amount,
			TransactionType:    domain.Expense,
			CurrencyCode:       expense.CurrencyCode,
			Description:        expense.Name,
			TransactionDate:    paidOn,
			IsRecurring:        true,
			RecurringExpenseID: &expense.RecurringExpenseID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.txnSink.AppendTransactionInTx(ctx, tx, txn); err != nil {
			s.LogError(ctx, err, "Failed to append recurring expense transaction",
				slog.String("recurring_expense_id", expenseID))
			return nil, err
		}
	}

	if err := s.recurringRepo.UpdateRecurringExpenseInTx(ctx, tx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update recurring expense",
			slog.String("recurring_expense_id", expenseID))
		return nil, err
	}

	if err := s.recurringRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Recurring expense paid",
		slog.String("recurring_expense_id", expenseID),
		slog.String("amount", expense.Amount.String()),
		slog.String("next_due_date", expense.NextDueDate.Format(time.DateOnly)))
	return expense, nil
}

func (s *recurringExpenseService) Pause(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	return s.transitionStatus(ctx, expenseID, userID, domain.RecurringPaused)
}

func (s *recurringExpenseService) Resume(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	return s.transitionStatus(ctx, expenseID, userID, domain.RecurringActive)
}

func (s *recurringExpenseService) Cancel(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	return s.transitionStatus(ctx, expenseID, userID, domain.RecurringCancelled)
}

// transitionStatus applies a pure lifecycle transition. Pause only applies
// to ACTIVE expenses, resume only to PAUSED ones; cancel applies from any
// non-terminal state and is terminal.
func (s *recurringExpenseService) transitionStatus(ctx context.Context, expenseID string, userID string, target domain.RecurringExpenseStatus) (*domain.RecurringExpense, error) {
	expense, err := s.recurringRepo.FindRecurringExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	if expense.Status == target {
		return expense, nil
	}

	switch target {
	case domain.RecurringPaused:
		if expense.Status != domain.RecurringActive {
			return nil, fmt.Errorf("%w: cannot pause a %s recurring expense", apperrors.ErrValidation, expense.Status)
		}
	case domain.RecurringActive:
		if expense.Status != domain.RecurringPaused {
			return nil, fmt.Errorf("%w: cannot resume a %s recurring expense", apperrors.ErrValidation, expense.Status)
		}
	case domain.RecurringCancelled:
		if expense.Status == domain.RecurringCompleted {
			return nil, fmt.Errorf("%w: cannot cancel a completed recurring expense", apperrors.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported status transition to %s", apperrors.ErrValidation, target)
	}

	now := time.Now().UTC()
	if err := s.recurringRepo.UpdateRecurringExpenseStatus(ctx, expenseID, userID, target, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update recurring expense status",
			slog.String("recurring_expense_id", expenseID),
			slog.String("target_status", string(target)))
		return nil, err
	}

	expense.Status = target
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID
	return expense, nil
}

// ProcessDueRecurringExpenses pays every ACTIVE auto-pay expense due on
// the given day. Each expense is processed in its own transaction: a
// failure (e.g. insufficient funds) is recorded and skipped, never
// propagated to abort the rest of the batch.
func (s *recurringExpenseService) ProcessDueRecurringExpenses(ctx context.Context, userID string, today time.Time) (*dto.ProcessDueResult, error) {
	due, err := s.recurringRepo.ListDueRecurringExpensesByUser(ctx, userID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due recurring expenses")
		return nil, fmt.Errorf("failed to list due recurring expenses: %w", err)
	}

	result := &dto.ProcessDueResult{
		Examined: len(due),
		Failures: []dto.ProcessDueFailure{},
	}

	for _, expense := range due {
		if !expense.IsAutoPay {
			result.Skipped++
			continue
		}

		if _, err := s.markAsPaidOn(ctx, expense.RecurringExpenseID, userID, today); err != nil {
			s.LogError(ctx, err, "Failed to auto-pay recurring expense",
				slog.String("recurring_expense_id", expense.RecurringExpenseID))
			result.Failures = append(result.Failures, dto.ProcessDueFailure{
				RecurringExpenseID: expense.RecurringExpenseID,
				Error:              err.Error(),
			})
			continue
		}
		result.Paid++
	}

	s.LogInfo(ctx, "Processed due recurring expenses",
		slog.Int("examined", result.Examined),
		slog.Int("paid", result.Paid),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}
