package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/core/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/finbuddy/finbuddy_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	userService  portssvc.UserSvcFacade
	authService  portssvc.AuthSvc
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.userService = services.NewUserService(suite.mockUserRepo)
	suite.authService = services.NewAuthService(suite.mockUserRepo, "test-secret", time.Hour, "finbuddy-test")
}

func (suite *UserServiceTestSuite) TestRegisterUser_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "sam", Name: "Sam", Password: "hunter22"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sam").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "sam" &&
			u.PasswordHash != "hunter22" &&
			utils.CheckPasswordHash("hunter22", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.userService.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "sam", Name: "Sam", Password: "hunter22"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sam").
		Return(&domain.User{UserID: uuid.NewString(), Username: "sam"}, nil).Once()

	_, err := suite.userService.RegisterUser(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter22")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "sam", Name: "Sam", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sam").Return(user, nil).Once()

	resp, err := suite.authService.Login(ctx, dto.LoginRequest{Username: "sam", Password: "hunter22"})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal("finbuddy-test", claims.Issuer)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter22")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "sam", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "sam").Return(user, nil).Once()

	_, err = suite.authService.Login(ctx, dto.LoginRequest{Username: "sam", Password: "wrong"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.authService.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "whatever"})

	// Unknown user and wrong password must be indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
