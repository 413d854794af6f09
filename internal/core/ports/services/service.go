package services

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
)

// TransactionSvcFacade exposes read access to the transaction log.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string, userID string, limit int) ([]domain.Transaction, error)
}

// ServiceContainer holds all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Auth        AuthSvc
	Account     AccountSvcFacade
	Loan        LoanSvcFacade
	Recurring   RecurringExpenseSvcFacade
	NetWorth    NetWorthSvc
	Transaction TransactionSvcFacade
}
