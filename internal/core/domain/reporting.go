package domain

import "github.com/shopspring/decimal"

// NetWorthSummary is a read-only aggregate over accounts and loans.
// TotalNetWorth = TotalAccountBalance + NetLoanPosition.
type NetWorthSummary struct {
	TotalAccountBalance decimal.Decimal        `json:"totalAccountBalance"`
	TotalAmountLent     decimal.Decimal        `json:"totalAmountLent"`
	TotalAmountBorrowed decimal.Decimal        `json:"totalAmountBorrowed"`
	NetLoanPosition     decimal.Decimal        `json:"netLoanPosition"`
	TotalNetWorth       decimal.Decimal        `json:"totalNetWorth"`
	AccountBreakdown    []AccountTypeBreakdown `json:"accountBreakdown"`
	LoanBreakdown       []LoanTypeBreakdown    `json:"loanBreakdown"`
}

// AccountTypeBreakdown groups included active accounts by type.
type AccountTypeBreakdown struct {
	AccountType  AccountType     `json:"accountType"`
	Count        int             `json:"count"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// LoanTypeBreakdown groups loans by direction.
type LoanTypeBreakdown struct {
	LoanType        LoanType        `json:"loanType"`
	Count           int             `json:"count"`
	ActiveCount     int             `json:"activeCount"`
	OverdueCount    int             `json:"overdueCount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}
