package repositories

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account by id, scoped to its owner.
	// Returns apperrors.ErrNotFound when missing or owned by another user.
	FindAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts belonging to a user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus changes the status of an account (e.g. archival).
	UpdateAccountStatus(ctx context.Context, accountID string, userID string, status domain.AccountStatus, updatedBy string, now time.Time) error
}

// AccountBalanceSupport defines the operations the ledger uses to mutate a
// balance atomically. The ForUpdate read takes a row-level lock so two
// mutations on the same account cannot interleave.
type AccountBalanceSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row within the transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string, userID string) (*domain.Account, error)

	// UpdateAccountBalanceInTx writes the new balance within the given transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, updatedBy string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
