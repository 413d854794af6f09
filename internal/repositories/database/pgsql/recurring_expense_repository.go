package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	"github.com/finbuddy/finbuddy_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringExpenseColumns = `recurring_expense_id, user_id, name, amount, currency_code, frequency, start_date, end_date, next_due_date, last_paid_date, status, is_auto_pay, account_id, category_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecurringExpenseRepository struct {
	BaseRepository
}

// newPgxRecurringExpenseRepository creates a new repository for recurring expense data.
func newPgxRecurringExpenseRepository(pool *pgxpool.Pool) *PgxRecurringExpenseRepository {
	return &PgxRecurringExpenseRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxRecurringExpenseRepository implements the recurring expense ports
var _ portsrepo.RecurringExpenseRepositoryWithTx = (*PgxRecurringExpenseRepository)(nil)

func toModelRecurringExpense(d domain.RecurringExpense) models.RecurringExpense {
	return models.RecurringExpense{
		RecurringExpenseID: d.RecurringExpenseID,
		UserID:             d.UserID,
		Name:               d.Name,
		Amount:             d.Amount,
		CurrencyCode:       d.CurrencyCode,
		Frequency:          string(d.Frequency),
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		NextDueDate:        d.NextDueDate,
		LastPaidDate:       d.LastPaidDate,
		Status:             string(d.Status),
		IsAutoPay:          d.IsAutoPay,
		AccountID:          d.AccountID,
		CategoryID:         d.CategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRecurringExpense(m models.RecurringExpense) domain.RecurringExpense {
	return domain.RecurringExpense{
		RecurringExpenseID: m.RecurringExpenseID,
		UserID:             m.UserID,
		Name:               m.Name,
		Amount:             m.Amount,
		CurrencyCode:       m.CurrencyCode,
		Frequency:          domain.Frequency(m.Frequency),
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		NextDueDate:        m.NextDueDate,
		LastPaidDate:       m.LastPaidDate,
		Status:             domain.RecurringExpenseStatus(m.Status),
		IsAutoPay:          m.IsAutoPay,
		AccountID:          m.AccountID,
		CategoryID:         m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanRecurringExpense(row pgx.Row) (models.RecurringExpense, error) {
	var m models.RecurringExpense
	err := row.Scan(
		&m.RecurringExpenseID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.CurrencyCode,
		&m.Frequency,
		&m.StartDate,
		&m.EndDate,
		&m.NextDueDate,
		&m.LastPaidDate,
		&m.Status,
		&m.IsAutoPay,
		&m.AccountID,
		&m.CategoryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRecurringExpenseRepository) queryRecurringExpenses(ctx context.Context, query string, args ...any) ([]domain.RecurringExpense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.RecurringExpense{}
	for rows.Next() {
		m, err := scanRecurringExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense row: %w", err)
		}
		expenses = append(expenses, toDomainRecurringExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recurring expense rows: %w", rows.Err())
	}

	return expenses, nil
}

// SaveRecurringExpense persists a new recurring expense.
func (r *PgxRecurringExpenseRepository) SaveRecurringExpense(ctx context.Context, expense domain.RecurringExpense) error {
	m := toModelRecurringExpense(expense)

	query := `
		INSERT INTO recurring_expenses (` + recurringExpenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecurringExpenseID,
		m.UserID,
		m.Name,
		m.Amount,
		m.CurrencyCode,
		m.Frequency,
		m.StartDate,
		m.EndDate,
		m.NextDueDate,
		m.LastPaidDate,
		m.Status,
		m.IsAutoPay,
		m.AccountID,
		m.CategoryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: recurring expense with ID %s already exists", apperrors.ErrDuplicate, m.RecurringExpenseID)
		}
		return fmt.Errorf("failed to save recurring expense %s: %w", m.RecurringExpenseID, err)
	}
	return nil
}

// UpdateRecurringExpenseInTx updates due-date/paid state within the given transaction.
func (r *PgxRecurringExpenseRepository) UpdateRecurringExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.RecurringExpense) error {
	m := toModelRecurringExpense(expense)

	query := `
		UPDATE recurring_expenses
		SET next_due_date = $3, last_paid_date = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE recurring_expense_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.RecurringExpenseID,
		m.UserID,
		m.NextDueDate,
		m.LastPaidDate,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring expense %s: %w", m.RecurringExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRecurringExpenseStatus changes the lifecycle status (pause/resume/cancel).
func (r *PgxRecurringExpenseRepository) UpdateRecurringExpenseStatus(ctx context.Context, expenseID string, userID string, status domain.RecurringExpenseStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE recurring_expenses
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE recurring_expense_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, expenseID, userID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of recurring expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRecurringExpenseByID retrieves a recurring expense by its ID, scoped to its owner.
func (r *PgxRecurringExpenseRepository) FindRecurringExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE recurring_expense_id = $1 AND user_id = $2;
	`
	m, err := scanRecurringExpense(r.Pool.QueryRow(ctx, query, expenseID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring expense by ID %s: %w", expenseID, err)
	}

	expense := toDomainRecurringExpense(m)
	return &expense, nil
}

// ListRecurringExpensesByUser retrieves all recurring expenses belonging to a user.
func (r *PgxRecurringExpenseRepository) ListRecurringExpensesByUser(ctx context.Context, userID string) ([]domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE user_id = $1
		ORDER BY next_due_date;
	`
	return r.queryRecurringExpenses(ctx, query, userID)
}

// ListDueRecurringExpensesByUser retrieves ACTIVE expenses whose next due date
// falls on the given calendar day.
func (r *PgxRecurringExpenseRepository) ListDueRecurringExpensesByUser(ctx context.Context, userID string, dueOn time.Time) ([]domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE user_id = $1 AND status = $2 AND next_due_date::date = $3::date
		ORDER BY next_due_date;
	`
	return r.queryRecurringExpenses(ctx, query, userID, string(domain.RecurringActive), dueOn)
}

// ListOverdueRecurringExpensesByUser retrieves ACTIVE expenses whose next due
// date lies strictly before the given day.
func (r *PgxRecurringExpenseRepository) ListOverdueRecurringExpensesByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE user_id = $1 AND status = $2 AND next_due_date::date < $3::date
		ORDER BY next_due_date;
	`
	return r.queryRecurringExpenses(ctx, query, userID, string(domain.RecurringActive), asOf)
}
