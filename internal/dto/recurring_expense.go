package dto

import (
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringExpenseRequest defines the data needed to create a new
// recurring expense. NextDueDate is computed from StartDate server-side.
type CreateRecurringExpenseRequest struct {
	Name         string           `json:"name" binding:"required"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode string           `json:"currencyCode" binding:"required,len=3"`
	Frequency    domain.Frequency `json:"frequency" binding:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
	StartDate    time.Time        `json:"startDate" binding:"required"`
	EndDate      *time.Time       `json:"endDate"`
	IsAutoPay    bool             `json:"isAutoPay"`
	AccountID    *string          `json:"accountID"`
	CategoryID   *string          `json:"categoryID"`
}

// RecurringExpenseResponse defines the data returned for a recurring expense.
type RecurringExpenseResponse struct {
	RecurringExpenseID string                        `json:"recurringExpenseID"`
	Name               string                        `json:"name"`
	Amount             decimal.Decimal               `json:"amount"`
	CurrencyCode       string                        `json:"currencyCode"`
	Frequency          domain.Frequency              `json:"frequency"`
	StartDate          time.Time                     `json:"startDate"`
	EndDate            *time.Time                    `json:"endDate"`
	NextDueDate        time.Time                     `json:"nextDueDate"`
	LastPaidDate       *time.Time                    `json:"lastPaidDate"`
	Status             domain.RecurringExpenseStatus `json:"status"`
	IsAutoPay          bool                          `json:"isAutoPay"`
	AccountID          *string                       `json:"accountID"`
	CategoryID         *string                       `json:"categoryID"`
	CreatedAt          time.Time                     `json:"createdAt"`
	LastUpdatedAt      time.Time                     `json:"lastUpdatedAt"`
}

// ToRecurringExpenseResponse converts a domain.RecurringExpense to its response DTO.
func ToRecurringExpenseResponse(r *domain.RecurringExpense) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		RecurringExpenseID: r.RecurringExpenseID,
		Name:               r.Name,
		Amount:             r.Amount,
		CurrencyCode:       r.CurrencyCode,
		Frequency:          r.Frequency,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		NextDueDate:        r.NextDueDate,
		LastPaidDate:       r.LastPaidDate,
		Status:             r.Status,
		IsAutoPay:          r.IsAutoPay,
		AccountID:          r.AccountID,
		CategoryID:         r.CategoryID,
		CreatedAt:          r.CreatedAt,
		LastUpdatedAt:      r.LastUpdatedAt,
	}
}

// ToListRecurringExpenseResponse converts a slice of recurring expenses to response DTOs.
func ToListRecurringExpenseResponse(expenses []domain.RecurringExpense) []RecurringExpenseResponse {
	res := make([]RecurringExpenseResponse, len(expenses))
	for i, r := range expenses {
		res[i] = ToRecurringExpenseResponse(&r)
	}
	return res
}

// ProcessDueFailure records one expense that could not be processed during
// a batch run.
type ProcessDueFailure struct {
	RecurringExpenseID string `json:"recurringExpenseID"`
	Error              string `json:"error"`
}

// ProcessDueResult summarizes a batch processing run. Examined counts every
// due expense looked at; Paid counts only the auto-pay expenses that were
// successfully paid.
type ProcessDueResult struct {
	Examined int                 `json:"examined"`
	Paid     int                 `json:"paid"`
	Skipped  int                 `json:"skipped"` // Due but not auto-pay
	Failures []ProcessDueFailure `json:"failures"`
}
