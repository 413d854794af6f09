package services

import (
	"context"
	"fmt"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
)

const defaultTransactionListLimit = 50

// transactionService exposes read access to the transaction log. Writes
// happen only through the loan and recurring-expense flows.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionListLimit
	}
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionListLimit
	}
	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for account")
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}
