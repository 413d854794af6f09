package services

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
)

// RecurringExpenseSvcFacade owns due-date scheduling, payment marking and
// the recurring-expense status lifecycle. Marking an expense paid emits an
// EXPENSE transaction and debits the linked account in one unit of work.
type RecurringExpenseSvcFacade interface {
	CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, userID string) (*domain.RecurringExpense, error)
	GetRecurringExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context, userID string) ([]domain.RecurringExpense, error)
	MarkAsPaid(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)
	Pause(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)
	Resume(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)
	Cancel(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)

	// ProcessDueRecurringExpenses pays every ACTIVE auto-pay expense due on
	// the given day. Each expense commits independently; one failure never
	// aborts the rest of the batch.
	ProcessDueRecurringExpenses(ctx context.Context, userID string, today time.Time) (*dto.ProcessDueResult, error)
}
