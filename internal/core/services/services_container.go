package services

import (
	"time"

	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/repositories/database/pgsql"
)

// ContainerConfig carries the settings the service layer needs.
type ContainerConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
	JWTIssuer string
}

// NewServiceContainer wires all services against the repository container.
func NewServiceContainer(repos *pgsql.RepositoryContainer, cfg ContainerConfig) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.Account)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.User),
		Auth:        NewAuthService(repos.User, cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer),
		Account:     NewAccountService(repos.Account),
		Loan:        NewLoanService(repos.Loan, ledger, repos.Transaction),
		Recurring:   NewRecurringExpenseService(repos.Recurring, ledger, repos.Transaction),
		NetWorth:    NewNetWorthService(repos.Account, repos.Loan),
		Transaction: NewTransactionService(repos.Transaction),
	}
}
