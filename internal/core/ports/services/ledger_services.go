package services

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerSvc is the only component allowed to mutate an account balance.
// Both operations require a positive amount and an owner-matching account,
// and run inside the caller's unit of work: the account row is locked for
// the duration of the transaction so concurrent mutations on the same
// account cannot interleave.
type LedgerSvc interface {
	// AddToBalance credits the account. Receiving money cannot fail on funds.
	AddToBalance(ctx context.Context, tx pgx.Tx, userID string, accountID string, amount decimal.Decimal) (*domain.Account, error)

	// SubtractFromBalance debits the account. Fails with
	// apperrors.ErrInsufficientFunds when the balance would go negative.
	SubtractFromBalance(ctx context.Context, tx pgx.Tx, userID string, accountID string, amount decimal.Decimal) (*domain.Account, error)
}
