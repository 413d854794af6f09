package repositories

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LoanReader defines read operations for loan data.
type LoanReader interface {
	// FindLoanByID retrieves a loan by id, scoped to its owner.
	FindLoanByID(ctx context.Context, loanID string, userID string) (*domain.Loan, error)

	// ListLoansByUser retrieves all loans belonging to a user.
	ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error)

	// ListLoansByUserAndType retrieves a user's loans of one direction (LENT or BORROWED).
	ListLoansByUserAndType(ctx context.Context, userID string, loanType domain.LoanType) ([]domain.Loan, error)

	// ListLoansByUserAndStatus retrieves a user's loans in a given status.
	ListLoansByUserAndStatus(ctx context.Context, userID string, status domain.LoanStatus) ([]domain.Loan, error)

	// ListOverdueLoansByUser retrieves loans past their due date that are not paid off.
	ListOverdueLoansByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data. Creation and payment
// recording happen inside the operation's transaction alongside the
// balance mutation they imply.
type LoanWriter interface {
	// SaveLoanInTx persists a new loan within the given transaction.
	SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// UpdateLoanInTx updates a loan's payment state within the given transaction.
	UpdateLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// UpdateLoanUrgency flips the urgency flag. No balance effect, so no transaction needed.
	UpdateLoanUrgency(ctx context.Context, loanID string, userID string, isUrgent bool, updatedBy string, now time.Time) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}

// LoanRepositoryWithTx extends LoanRepositoryFacade with transaction capabilities.
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
