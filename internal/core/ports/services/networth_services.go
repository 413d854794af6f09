package services

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
)

// NetWorthSvc derives net worth and loan summaries from account and loan
// state. Pure read side: no mutation, no persistence writes.
type NetWorthSvc interface {
	GetNetWorthSummary(ctx context.Context, userID string, asOf time.Time) (*domain.NetWorthSummary, error)
	GetLoanBreakdown(ctx context.Context, userID string, asOf time.Time) ([]domain.LoanTypeBreakdown, error)
}
