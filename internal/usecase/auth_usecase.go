// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notesia/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type reported to clients after login.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Username string // Optional, defaults to the local part of Email.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Token lifetime in seconds.
	User        *entity.User
}

// AuthUsecase defines account registration and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}
