package services

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
)

// AccountSvcFacade defines account lifecycle operations. Balances are not
// editable here; only the ledger mutates them.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	ArchiveAccount(ctx context.Context, accountID string, userID string) error
}
