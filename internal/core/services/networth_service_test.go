package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NetWorthServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLoanRepo    *MockLoanRepository
	service         portssvc.NetWorthSvc

	userID string
	asOf   time.Time
}

func (suite *NetWorthServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.service = services.NewNetWorthService(suite.mockAccountRepo, suite.mockLoanRepo)
	suite.userID = uuid.NewString()
	suite.asOf = date(2024, time.June, 1)
}

func (suite *NetWorthServiceTestSuite) namedAccount(name string, accountType domain.AccountType, balance string) domain.Account {
	return domain.Account{
		AccountID:         uuid.NewString(),
		UserID:            suite.userID,
		Name:              name,
		AccountType:       accountType,
		CurrencyCode:      "USD",
		Balance:           decimal.RequireFromString(balance),
		IncludeInNetWorth: true,
		Status:            domain.AccountActive,
	}
}

func (suite *NetWorthServiceTestSuite) loan(loanType domain.LoanType, principal string) domain.Loan {
	amount := decimal.RequireFromString(principal)
	return domain.Loan{
		LoanID:           uuid.NewString(),
		UserID:           suite.userID,
		CounterpartyName: "Sam",
		LoanType:         loanType,
		PrincipalAmount:  amount,
		TotalAmount:      amount,
		PaidAmount:       decimal.Zero,
		RemainingAmount:  amount,
		CurrencyCode:     "USD",
		LoanDate:         date(2024, time.January, 1),
		Status:           domain.LoanActive,
	}
}

func (suite *NetWorthServiceTestSuite) TestGetNetWorthSummary() {
	ctx := context.Background()

	accounts := []domain.Account{
		suite.namedAccount("Checking", domain.Checking, "5000.00"),
		suite.namedAccount("Savings", domain.Savings, "3000.00"),
	}
	loans := []domain.Loan{
		suite.loan(domain.Lent, "2000.00"),
		suite.loan(domain.Borrowed, "1000.00"),
	}

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).Return(loans, nil).Once()

	summary, err := suite.service.GetNetWorthSummary(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(summary.TotalAccountBalance.Equal(decimal.RequireFromString("8000.00")))
	suite.True(summary.TotalAmountLent.Equal(decimal.RequireFromString("2000.00")))
	suite.True(summary.TotalAmountBorrowed.Equal(decimal.RequireFromString("1000.00")))
	suite.True(summary.NetLoanPosition.Equal(decimal.RequireFromString("1000.00")))
	suite.True(summary.TotalNetWorth.Equal(decimal.RequireFromString("9000.00")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *NetWorthServiceTestSuite) TestGetNetWorthSummary_SkipsExcludedAndArchivedAccounts() {
	ctx := context.Background()

	excluded := suite.namedAccount("Vacation fund", domain.Savings, "700.00")
	excluded.IncludeInNetWorth = false
	archived := suite.namedAccount("Old checking", domain.Checking, "400.00")
	archived.Status = domain.AccountArchived

	accounts := []domain.Account{
		suite.namedAccount("Checking", domain.Checking, "5000.00"),
		excluded,
		archived,
	}

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).Return([]domain.Loan{}, nil).Once()

	summary, err := suite.service.GetNetWorthSummary(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(summary.TotalAccountBalance.Equal(decimal.RequireFromString("5000.00")))
	suite.True(summary.TotalNetWorth.Equal(decimal.RequireFromString("5000.00")))
	suite.Require().Len(summary.AccountBreakdown, 1)
	suite.Equal(domain.Checking, summary.AccountBreakdown[0].AccountType)
	suite.Equal(1, summary.AccountBreakdown[0].Count)
}

func (suite *NetWorthServiceTestSuite) TestGetNetWorthSummary_AccountBreakdownKeepsFirstSeenOrder() {
	ctx := context.Background()

	accounts := []domain.Account{
		suite.namedAccount("Wallet", domain.Cash, "100.00"),
		suite.namedAccount("Checking", domain.Checking, "500.00"),
		suite.namedAccount("Coins", domain.Cash, "25.00"),
	}

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).Return([]domain.Loan{}, nil).Once()

	summary, err := suite.service.GetNetWorthSummary(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(summary.AccountBreakdown, 2)
	suite.Equal(domain.Cash, summary.AccountBreakdown[0].AccountType)
	suite.Equal(2, summary.AccountBreakdown[0].Count)
	suite.True(summary.AccountBreakdown[0].TotalBalance.Equal(decimal.RequireFromString("125.00")))
	suite.Equal(domain.Checking, summary.AccountBreakdown[1].AccountType)
}

func (suite *NetWorthServiceTestSuite) TestGetNetWorthSummary_BorrowedHeavyGoesNegative() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).
		Return([]domain.Loan{suite.loan(domain.Borrowed, "2500.00")}, nil).Once()

	summary, err := suite.service.GetNetWorthSummary(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(summary.NetLoanPosition.Equal(decimal.RequireFromString("-2500.00")))
	suite.True(summary.TotalNetWorth.Equal(decimal.RequireFromString("-2500.00")))
}

func (suite *NetWorthServiceTestSuite) TestGetLoanBreakdown_CountsActiveAndOverdue() {
	ctx := context.Background()

	overdueDate := date(2024, time.May, 1)
	futureDate := date(2024, time.December, 1)

	overdue := suite.loan(domain.Lent, "300.00")
	overdue.DueDate = &overdueDate

	current := suite.loan(domain.Lent, "200.00")
	current.DueDate = &futureDate

	paidOff := suite.loan(domain.Lent, "500.00")
	paidOff.DueDate = &overdueDate
	paidOff.Status = domain.LoanPaidOff
	paidOff.PaidAmount = decimal.RequireFromString("500.00")
	paidOff.RemainingAmount = decimal.Zero

	borrowed := suite.loan(domain.Borrowed, "150.00")
	borrowed.PaidAmount = decimal.RequireFromString("50.00")
	borrowed.RemainingAmount = decimal.RequireFromString("100.00")

	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).
		Return([]domain.Loan{overdue, current, paidOff, borrowed}, nil).Once()

	breakdown, err := suite.service.GetLoanBreakdown(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 2)

	lent := breakdown[0]
	suite.Equal(domain.Lent, lent.LoanType)
	suite.Equal(3, lent.Count)
	suite.Equal(2, lent.ActiveCount)
	// A paid-off loan past its due date is settled, not overdue.
	suite.Equal(1, lent.OverdueCount)
	suite.True(lent.TotalAmount.Equal(decimal.RequireFromString("1000.00")))
	suite.True(lent.PaidAmount.Equal(decimal.RequireFromString("500.00")))
	suite.True(lent.RemainingAmount.Equal(decimal.RequireFromString("500.00")))

	suite.Equal(domain.Borrowed, breakdown[1].LoanType)
	suite.Equal(1, breakdown[1].Count)
	suite.True(breakdown[1].RemainingAmount.Equal(decimal.RequireFromString("100.00")))
}

func (suite *NetWorthServiceTestSuite) TestGetNetWorthSummary_EmptyUser() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockLoanRepo.On("ListLoansByUser", ctx, suite.userID).Return([]domain.Loan{}, nil).Once()

	summary, err := suite.service.GetNetWorthSummary(ctx, suite.userID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(summary.TotalNetWorth.IsZero())
	suite.Empty(summary.AccountBreakdown)
	suite.Empty(summary.LoanBreakdown)
}

func TestNetWorthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}
