package repositories

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RecurringExpenseReader defines read operations for recurring expense data.
type RecurringExpenseReader interface {
	// FindRecurringExpenseByID retrieves a recurring expense by id, scoped to its owner.
	FindRecurringExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error)

	// ListRecurringExpensesByUser retrieves all recurring expenses belonging to a user.
	ListRecurringExpensesByUser(ctx context.Context, userID string) ([]domain.RecurringExpense, error)

	// ListDueRecurringExpensesByUser retrieves ACTIVE expenses whose next due date falls on the given day.
	ListDueRecurringExpensesByUser(ctx context.Context, userID string, dueOn time.Time) ([]domain.RecurringExpense, error)

	// ListOverdueRecurringExpensesByUser retrieves ACTIVE expenses whose next due date is before the given day.
	ListOverdueRecurringExpensesByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.RecurringExpense, error)
}

// RecurringExpenseWriter defines write operations for recurring expense data.
type RecurringExpenseWriter interface {
	// SaveRecurringExpense persists a new recurring expense.
	SaveRecurringExpense(ctx context.Context, expense domain.RecurringExpense) error

	// UpdateRecurringExpenseInTx updates due-date/paid state within the given
	// transaction, alongside the balance mutation and transaction emission of
	// the same payment.
	UpdateRecurringExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.RecurringExpense) error

	// UpdateRecurringExpenseStatus changes the lifecycle status (pause/resume/cancel).
	UpdateRecurringExpenseStatus(ctx context.Context, expenseID string, userID string, status domain.RecurringExpenseStatus, updatedBy string, now time.Time) error
}

// RecurringExpenseRepositoryFacade combines all recurring-expense repository interfaces.
type RecurringExpenseRepositoryFacade interface {
	RecurringExpenseReader
	RecurringExpenseWriter
}

// RecurringExpenseRepositoryWithTx extends the facade with transaction capabilities.
type RecurringExpenseRepositoryWithTx interface {
	RecurringExpenseRepositoryFacade
	TransactionManager
}
