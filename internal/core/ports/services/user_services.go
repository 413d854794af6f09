package services

import (
	"context"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
)

// UserSvcFacade defines user registration and lookup.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthSvc verifies credentials and issues tokens.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
