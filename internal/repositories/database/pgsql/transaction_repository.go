package pgsql

import (
	"context"
	"fmt"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	"github.com/finbuddy/finbuddy_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, account_id, category_id, amount, transaction_type, currency_code, description, transaction_date, is_recurring, recurring_expense_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements the transaction ports
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		UserID:             d.UserID,
		AccountID:          d.AccountID,
		CategoryID:         d.CategoryID,
		Amount:             d.Amount,
		TransactionType:    string(d.TransactionType),
		CurrencyCode:       d.CurrencyCode,
		Description:        d.Description,
		TransactionDate:    d.TransactionDate,
		IsRecurring:        d.IsRecurring,
		RecurringExpenseID: d.RecurringExpenseID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		UserID:             m.UserID,
		AccountID:          m.AccountID,
		CategoryID:         m.CategoryID,
		Amount:             m.Amount,
		TransactionType:    domain.TransactionType(m.TransactionType),
		CurrencyCode:       m.CurrencyCode,
		Description:        m.Description,
		TransactionDate:    m.TransactionDate,
		IsRecurring:        m.IsRecurring,
		RecurringExpenseID: m.RecurringExpenseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.TransactionType,
		&m.CurrencyCode,
		&m.Description,
		&m.TransactionDate,
		&m.IsRecurring,
		&m.RecurringExpenseID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}

// AppendTransactionInTx inserts a transaction within the given transaction.
// Records are append-only; there is no update or delete path.
func (r *PgxTransactionRepository) AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.TransactionType,
		m.CurrencyCode,
		m.Description,
		m.TransactionDate,
		m.IsRecurring,
		m.RecurringExpenseID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to append transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// ListTransactionsByUser retrieves the most recent transactions for a user.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2;
	`
	return r.queryTransactions(ctx, query, userID, limit)
}

// ListTransactionsByAccount retrieves the most recent transactions for one account.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND user_id = $2
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $3;
	`
	return r.queryTransactions(ctx, query, accountID, userID, limit)
}
