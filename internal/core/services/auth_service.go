package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/apperrors"
	portsrepo "github.com/finbuddy/finbuddy_backend/internal/core/ports/repositories"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/finbuddy/finbuddy_backend/internal/utils"
)

// authService verifies credentials and issues JWTs.
type authService struct {
	BaseService
	userRepo  portsrepo.UserReader
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvc {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Ensure authService implements the AuthSvc interface
var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown user and wrong password.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to find user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate JWT")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
