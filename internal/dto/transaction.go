package dto

import (
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string                 `json:"transactionID"`
	AccountID          string                 `json:"accountID"`
	CategoryID         *string                `json:"categoryID"`
	Amount             decimal.Decimal        `json:"amount"`
	TransactionType    domain.TransactionType `json:"transactionType"`
	CurrencyCode       string                 `json:"currencyCode"`
	Description        string                 `json:"description"`
	TransactionDate    time.Time              `json:"transactionDate"`
	IsRecurring        bool                   `json:"isRecurring"`
	RecurringExpenseID *string                `json:"recurringExpenseID"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      t.TransactionID,
		AccountID:          t.AccountID,
		CategoryID:         t.CategoryID,
		Amount:             t.Amount,
		TransactionType:    t.TransactionType,
		CurrencyCode:       t.CurrencyCode,
		Description:        t.Description,
		TransactionDate:    t.TransactionDate,
		IsRecurring:        t.IsRecurring,
		RecurringExpenseID: t.RecurringExpenseID,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
