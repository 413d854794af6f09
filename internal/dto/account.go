package dto

import (
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// OpeningBalance seeds the balance once at creation; there is no endpoint
// to set a balance to an arbitrary value afterwards.
type CreateAccountRequest struct {
	Name              string             `json:"name" binding:"required"`
	AccountType       domain.AccountType `json:"accountType" binding:"required,oneof=CHECKING SAVINGS CREDIT_CARD CASH INVESTMENT OTHER"`
	CurrencyCode      string             `json:"currencyCode" binding:"required,len=3"`
	OpeningBalance    *decimal.Decimal   `json:"openingBalance"` // Optional, defaults to zero
	IncludeInNetWorth *bool              `json:"includeInNetWorth"` // Optional, defaults to true
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID         string               `json:"accountID"`
	Name              string               `json:"name"`
	AccountType       domain.AccountType   `json:"accountType"`
	CurrencyCode      string               `json:"currencyCode"`
	Balance           decimal.Decimal      `json:"balance"`
	IncludeInNetWorth bool                 `json:"includeInNetWorth"`
	Status            domain.AccountStatus `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	LastUpdatedAt     time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         acc.AccountID,
		Name:              acc.Name,
		AccountType:       acc.AccountType,
		CurrencyCode:      acc.CurrencyCode,
		Balance:           acc.Balance,
		IncludeInNetWorth: acc.IncludeInNetWorth,
		Status:            acc.Status,
		CreatedAt:         acc.CreatedAt,
		LastUpdatedAt:     acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
