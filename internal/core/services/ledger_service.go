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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledgerService is the single owner of account balance mutation. Every
// mutation locks the account row for the duration of the caller's
// transaction, so a loan payment and a recurring-expense payment racing on
// the same account serialize instead of losing an update.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvc {
	return &ledgerService{accountRepo: accountRepo}
}

// Ensure ledgerService implements the LedgerSvc interface
var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// AddToBalance credits the account by amount within the caller's transaction.
func (s *ledgerService) AddToBalance(ctx context.Context, tx pgx.Tx, userID string, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return s.applyBalanceChange(ctx, tx, userID, accountID, amount)
}

// SubtractFromBalance debits the account by amount within the caller's
// transaction. Fails with ErrInsufficientFunds when balance < amount.
func (s *ledgerService) SubtractFromBalance(ctx context.Context, tx pgx.Tx, userID string, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return s.applyBalanceChange(ctx, tx, userID, accountID, amount.Neg())
}

// applyBalanceChange performs the locked read-modify-write on the account
// row. delta is positive for credits and negative for debits.
func (s *ledgerService) applyBalanceChange(ctx context.Context, tx pgx.Tx, userID string, accountID string, delta decimal.Decimal) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock account for balance change",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		s.LogDebug(ctx, "Balance change rejected, insufficient funds",
			slog.String("account_id", accountID),
			slog.String("balance", account.Balance.String()),
			slog.String("delta", delta.String()))
		return nil, fmt.Errorf("%w: balance %s is less than requested %s",
			apperrors.ErrInsufficientFunds, account.Balance.String(), delta.Neg().String())
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, newBalance, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to persist balance change",
			slog.String("account_id", accountID))
		return nil, err
	}

	account.Balance = newBalance
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	s.LogDebug(ctx, "Balance updated",
		slog.String("account_id", accountID),
		slog.String("new_balance", newBalance.String()))
	return account, nil
}
