package repositories

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionSink appends transaction records. The ledger core never
// updates or deletes a transaction once written.
type TransactionSink interface {
	// AppendTransactionInTx inserts a transaction within the given transaction.
	AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// ListTransactionsByUser retrieves the most recent transactions for a user.
	ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves the most recent transactions for one account.
	ListTransactionsByAccount(ctx context.Context, accountID string, userID string, limit int) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionSink
	TransactionReader
}
