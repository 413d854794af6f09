package services_test

import (
	"context"
	"testing"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/core/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade

	userID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AppliesDefaults() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  domain.Checking,
		CurrencyCode: "USD",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.UserID == suite.userID &&
			acc.Balance.IsZero() &&
			acc.IncludeInNetWorth &&
			acc.Status == domain.AccountActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.True(account.Balance.IsZero())
	suite.True(account.IncludeInNetWorth)
	suite.Equal(domain.AccountActive, account.Status)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithOpeningBalance() {
	ctx := context.Background()
	opening := decimal.RequireFromString("250.00")
	exclude := false
	req := dto.CreateAccountRequest{
		Name:              "Savings",
		AccountType:       domain.Savings,
		CurrencyCode:      "USD",
		OpeningBalance:    &opening,
		IncludeInNetWorth: &exclude,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.Equal(opening) && !acc.IncludeInNetWorth
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(opening))
	suite.False(account.IncludeInNetWorth)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsNegativeOpeningBalance() {
	ctx := context.Background()
	opening := decimal.RequireFromString("-0.01")
	req := dto.CreateAccountRequest{
		Name:           "Checking",
		AccountType:    domain.Checking,
		CurrencyCode:   "USD",
		OpeningBalance: &opening,
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestArchiveAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, suite.userID).
		Return(&domain.Account{AccountID: accountID, UserID: suite.userID, Status: domain.AccountActive}, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, accountID, suite.userID,
		domain.AccountArchived, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ArchiveAccount(ctx, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestArchiveAccount_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ArchiveAccount(ctx, accountID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
