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
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements account lifecycle operations. The balance is
// seeded once at creation; afterwards only the ledger mutates it.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	balance := decimal.Zero
	if req.OpeningBalance != nil {
		if req.OpeningBalance.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
		}
		balance = *req.OpeningBalance
	}

	includeInNetWorth := true
	if req.IncludeInNetWorth != nil {
		includeInNetWorth = *req.IncludeInNetWorth
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		UserID:            userID,
		Name:              req.Name,
		AccountType:       req.AccountType,
		CurrencyCode:      req.CurrencyCode,
		Balance:           balance,
		IncludeInNetWorth: includeInNetWorth,
		Status:            domain.AccountActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, accountID string, userID string) error {
	// Verify the account exists and belongs to the user first.
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID, userID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateAccountStatus(ctx, accountID, userID, domain.AccountArchived, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to archive account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account archived", slog.String("account_id", accountID))
	return nil
}
