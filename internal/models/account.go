package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a financial account.
type Account struct {
	AccountID         string          `db:"account_id"`
	UserID            string          `db:"user_id"`
	Name              string          `db:"name"`
	AccountType       string          `db:"account_type"`
	CurrencyCode      string          `db:"currency_code"`
	Balance           decimal.Decimal `db:"balance"`
	IncludeInNetWorth bool            `db:"include_in_net_worth"`
	Status            string          `db:"status"`
	AuditFields
}
