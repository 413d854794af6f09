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

const loanColumns = `loan_id, user_id, counterparty_name, loan_type, principal_amount, interest_rate, total_amount, paid_amount, remaining_amount, currency_code, status, loan_date, due_date, is_urgent, account_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements the loan ports
var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

func toModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:           d.LoanID,
		UserID:           d.UserID,
		CounterpartyName: d.CounterpartyName,
		LoanType:         string(d.LoanType),
		PrincipalAmount:  d.PrincipalAmount,
		InterestRate:     d.InterestRate,
		TotalAmount:      d.TotalAmount,
		PaidAmount:       d.PaidAmount,
		RemainingAmount:  d.RemainingAmount,
		CurrencyCode:     d.CurrencyCode,
		Status:           string(d.Status),
		LoanDate:         d.LoanDate,
		DueDate:          d.DueDate,
		IsUrgent:         d.IsUrgent,
		AccountID:        d.AccountID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:           m.LoanID,
		UserID:           m.UserID,
		CounterpartyName: m.CounterpartyName,
		LoanType:         domain.LoanType(m.LoanType),
		PrincipalAmount:  m.PrincipalAmount,
		InterestRate:     m.InterestRate,
		TotalAmount:      m.TotalAmount,
		PaidAmount:       m.PaidAmount,
		RemainingAmount:  m.RemainingAmount,
		CurrencyCode:     m.CurrencyCode,
		Status:           domain.LoanStatus(m.Status),
		LoanDate:         m.LoanDate,
		DueDate:          m.DueDate,
		IsUrgent:         m.IsUrgent,
		AccountID:        m.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanLoan(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.UserID,
		&m.CounterpartyName,
		&m.LoanType,
		&m.PrincipalAmount,
		&m.InterestRate,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.RemainingAmount,
		&m.CurrencyCode,
		&m.Status,
		&m.LoanDate,
		&m.DueDate,
		&m.IsUrgent,
		&m.AccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// queryLoans runs a loan SELECT and scans all rows into domain loans.
func (r *PgxLoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, toDomainLoan(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", rows.Err())
	}

	return loans, nil
}

// SaveLoanInTx persists a new loan within the given transaction.
func (r *PgxLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	m := toModelLoan(loan)

	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		m.LoanID,
		m.UserID,
		m.CounterpartyName,
		m.LoanType,
		m.PrincipalAmount,
		m.InterestRate,
		m.TotalAmount,
		m.PaidAmount,
		m.RemainingAmount,
		m.CurrencyCode,
		m.Status,
		m.LoanDate,
		m.DueDate,
		m.IsUrgent,
		m.AccountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: loan with ID %s already exists", apperrors.ErrDuplicate, m.LoanID)
		}
		return fmt.Errorf("failed to save loan %s: %w", m.LoanID, err)
	}
	return nil
}

// UpdateLoanInTx updates a loan's payment state within the given transaction.
func (r *PgxLoanRepository) UpdateLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	m := toModelLoan(loan)

	query := `
		UPDATE loans
		SET paid_amount = $3, remaining_amount = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE loan_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.LoanID,
		m.UserID,
		m.PaidAmount,
		m.RemainingAmount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan %s: %w", m.LoanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateLoanUrgency flips the urgency flag on a loan.
func (r *PgxLoanRepository) UpdateLoanUrgency(ctx context.Context, loanID string, userID string, isUrgent bool, updatedBy string, now time.Time) error {
	query := `
		UPDATE loans
		SET is_urgent = $3, last_updated_at = $4, last_updated_by = $5
		WHERE loan_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, loanID, userID, isUrgent, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update urgency of loan %s: %w", loanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLoanByID retrieves a loan by its ID, scoped to its owner.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string, userID string) (*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE loan_id = $1 AND user_id = $2;
	`
	m, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}

	loan := toDomainLoan(m)
	return &loan, nil
}

// ListLoansByUser retrieves all loans belonging to a user.
func (r *PgxLoanRepository) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1
		ORDER BY loan_date DESC;
	`
	return r.queryLoans(ctx, query, userID)
}

// ListLoansByUserAndType retrieves a user's loans of one direction (LENT or BORROWED).
func (r *PgxLoanRepository) ListLoansByUserAndType(ctx context.Context, userID string, loanType domain.LoanType) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1 AND loan_type = $2
		ORDER BY loan_date DESC;
	`
	return r.queryLoans(ctx, query, userID, string(loanType))
}

// ListLoansByUserAndStatus retrieves a user's loans in a given status.
func (r *PgxLoanRepository) ListLoansByUserAndStatus(ctx context.Context, userID string, status domain.LoanStatus) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1 AND status = $2
		ORDER BY loan_date DESC;
	`
	return r.queryLoans(ctx, query, userID, string(status))
}

// ListOverdueLoansByUser retrieves loans past their due date that are not paid off.
func (r *PgxLoanRepository) ListOverdueLoansByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1 AND due_date IS NOT NULL AND due_date < $2 AND status != $3
		ORDER BY due_date;
	`
	return r.queryLoans(ctx, query, userID, asOf, string(domain.LoanPaidOff))
}
