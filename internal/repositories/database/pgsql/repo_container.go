package pgsql

import (
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles all repositories behind their port interfaces.
type RepositoryContainer struct {
	Account     portsrepo.AccountRepositoryWithTx
	Loan        portsrepo.LoanRepositoryWithTx
	Recurring   portsrepo.RecurringExpenseRepositoryWithTx
	Transaction portsrepo.TransactionRepositoryFacade
	User        portsrepo.UserRepositoryFacade
}

// NewRepositoryContainer constructs all pgsql repositories over one pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Account:     newPgxAccountRepository(dbPool),
		Loan:        newPgxLoanRepository(dbPool),
		Recurring:   newPgxRecurringExpenseRepository(dbPool),
		Transaction: newPgxTransactionRepository(dbPool),
		User:        newPgxUserRepository(dbPool),
	}
}
