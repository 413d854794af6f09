package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// netWorthService derives net worth and loan breakdowns from account and
// loan state. Read-only: two bulk fetches, all grouping done in memory.
type netWorthService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	loanRepo    portsrepo.LoanReader
}

// NewNetWorthService creates a new net worth service.
func NewNetWorthService(accountRepo portsrepo.AccountReader, loanRepo portsrepo.LoanReader) portssvc.NetWorthSvc {
	return &netWorthService{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
	}
}

// Ensure netWorthService implements the NetWorthSvc interface
var _ portssvc.NetWorthSvc = (*netWorthService)(nil)

// GetNetWorthSummary computes:
//
//	totalAccountBalance = sum of balances over included, active accounts
//	netLoanPosition     = principal lent - principal borrowed (all statuses)
//	totalNetWorth       = totalAccountBalance + netLoanPosition
func (s *netWorthService) GetNetWorthSummary(ctx context.Context, userID string, asOf time.Time) (*domain.NetWorthSummary, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for net worth")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans for net worth")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	totalBalance := decimal.Zero
	accountGroups := make(map[domain.AccountType]*domain.AccountTypeBreakdown)
	accountOrder := make([]domain.AccountType, 0)
	for _, acc := range accounts {
		if !acc.IncludeInNetWorth || acc.Status != domain.AccountActive {
			continue
		}
		totalBalance = totalBalance.Add(acc.Balance)

		group, ok := accountGroups[acc.AccountType]
		if !ok {
			group = &domain.AccountTypeBreakdown{AccountType: acc.AccountType, TotalBalance: decimal.Zero}
			accountGroups[acc.AccountType] = group
			accountOrder = append(accountOrder, acc.AccountType)
		}
		group.Count++
		group.TotalBalance = group.TotalBalance.Add(acc.Balance)
	}

	// Loan position uses principal amounts, not interest-inflated totals,
	// regardless of repayment status.
	totalLent := decimal.Zero
	totalBorrowed := decimal.Zero
	for _, loan := range loans {
		switch loan.LoanType {
		case domain.Lent:
			totalLent = totalLent.Add(loan.PrincipalAmount)
		case domain.Borrowed:
			totalBorrowed = totalBorrowed.Add(loan.PrincipalAmount)
		}
	}
	netLoanPosition := totalLent.Sub(totalBorrowed)

	accountBreakdown := make([]domain.AccountTypeBreakdown, 0, len(accountOrder))
	for _, t := range accountOrder {
		accountBreakdown = append(accountBreakdown, *accountGroups[t])
	}

	summary := &domain.NetWorthSummary{
		TotalAccountBalance: totalBalance,
		TotalAmountLent:     totalLent,
		TotalAmountBorrowed: totalBorrowed,
		NetLoanPosition:     netLoanPosition,
		TotalNetWorth:       totalBalance.Add(netLoanPosition),
		AccountBreakdown:    accountBreakdown,
		LoanBreakdown:       buildLoanBreakdown(loans, asOf),
	}

	s.LogDebug(ctx, "Net worth summary computed",
		"total_net_worth", summary.TotalNetWorth.String(),
		"account_count", len(accounts),
		"loan_count", len(loans))
	return summary, nil
}

// GetLoanBreakdown returns per-direction loan aggregates.
func (s *netWorthService) GetLoanBreakdown(ctx context.Context, userID string, asOf time.Time) ([]domain.LoanTypeBreakdown, error) {
	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans for breakdown")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return buildLoanBreakdown(loans, asOf), nil
}

// buildLoanBreakdown groups loans by direction, counting active and
// overdue loans and summing total/paid/remaining amounts.
func buildLoanBreakdown(loans []domain.Loan, asOf time.Time) []domain.LoanTypeBreakdown {
	groups := make(map[domain.LoanType]*domain.LoanTypeBreakdown)
	order := make([]domain.LoanType, 0, 2)

	for _, loan := range loans {
		group, ok := groups[loan.LoanType]
		if !ok {
			group = &domain.LoanTypeBreakdown{
				LoanType:        loan.LoanType,
				TotalAmount:     decimal.Zero,
				PaidAmount:      decimal.Zero,
				RemainingAmount: decimal.Zero,
			}
			groups[loan.LoanType] = group
			order = append(order, loan.LoanType)
		}

		group.Count++
		if loan.Status != domain.LoanPaidOff {
			group.ActiveCount++
		}
		if loan.IsOverdue(asOf) {
			group.OverdueCount++
		}
		group.TotalAmount = group.TotalAmount.Add(loan.TotalAmount)
		group.PaidAmount = group.PaidAmount.Add(loan.PaidAmount)
		group.RemainingAmount = group.RemainingAmount.Add(loan.RemainingAmount)
	}

	breakdown := make([]domain.LoanTypeBreakdown, 0, len(order))
	for _, t := range order {
		breakdown = append(breakdown, *groups[t])
	}
	return breakdown
}
