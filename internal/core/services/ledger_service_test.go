package services_test

import (
	"context"
	"testing"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvc

	userID    string
	accountID string
	tx        stubTx
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
	suite.tx = stubTx{}
}

func (suite *LedgerServiceTestSuite) account(balance string) *domain.Account {
	return &domain.Account{
		AccountID:    suite.accountID,
		UserID:       suite.userID,
		Name:         "Checking",
		AccountType:  domain.Checking,
		CurrencyCode: "USD",
		Balance:      decimal.RequireFromString(balance),
		Status:       domain.AccountActive,
	}
}

func (suite *LedgerServiceTestSuite) TestAddToBalance_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByIDForUpdate", ctx, suite.tx, suite.accountID, suite.userID).
		Return(suite.account("100.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalanceInTx", ctx, suite.tx, suite.accountID,
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(decimal.RequireFromString("150.00")) }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.AddToBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString("50.00"))

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.Balance.Equal(decimal.RequireFromString("150.00")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSubtractFromBalance_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByIDForUpdate", ctx, suite.tx, suite.accountID, suite.userID).
		Return(suite.account("100.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalanceInTx", ctx, suite.tx, suite.accountID,
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(decimal.RequireFromString("30.00")) }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.SubtractFromBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString("70.00"))

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.RequireFromString("30.00")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSubtractFromBalance_ToExactlyZero() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByIDForUpdate", ctx, suite.tx, suite.accountID, suite.userID).
		Return(suite.account("100.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalanceInTx", ctx, suite.tx, suite.accountID,
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.IsZero() }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	account, err := suite.service.SubtractFromBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString("100.00"))

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSubtractFromBalance_InsufficientFunds() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByIDForUpdate", ctx, suite.tx, suite.accountID, suite.userID).
		Return(suite.account("100.00"), nil).Once()

	account, err := suite.service.SubtractFromBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString("100.01"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(account)
	// The balance write must never happen on a rejected debit.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalanceInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddToBalance_RejectsNonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []string{"0", "-5.00"} {
		_, err := suite.service.AddToBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString(amount))
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByIDForUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSubtractFromBalance_RejectsNonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []string{"0", "-1"} {
		_, err := suite.service.SubtractFromBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString(amount))
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByIDForUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddToBalance_AccountNotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByIDForUpdate", ctx, suite.tx, suite.accountID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.AddToBalance(ctx, suite.tx, suite.userID, suite.accountID, decimal.RequireFromString("10.00"))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
