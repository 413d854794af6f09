package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account for reporting purposes.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	CreditCard AccountType = "CREDIT_CARD"
	Cash       AccountType = "CASH"
	Investment AccountType = "INVESTMENT"
	OtherAcct  AccountType = "OTHER"
)

// AccountStatus indicates whether an account is live or archived.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountArchived AccountStatus = "ARCHIVED"
)

// Account represents a financial account within the core domain.
// Balance is an exact decimal and is only ever mutated by the ledger
// service as a side effect of loan, recurring-expense, or transaction
// operations.
type Account struct {
	AccountID         string          `json:"accountID"`    // Primary Key (UUID)
	UserID            string          `json:"userID"`       // Owning user (NON-NULL)
	Name              string          `json:"name"`         // User-defined name
	AccountType       AccountType     `json:"accountType"`  // CHECKING, SAVINGS, etc.
	CurrencyCode      string          `json:"currencyCode"` // Opaque 3-letter code, never converted
	Balance           decimal.Decimal `json:"balance"`
	IncludeInNetWorth bool            `json:"includeInNetWorth"` // Whether the balance counts towards net worth
	Status            AccountStatus   `json:"status"`
	AuditFields
}
