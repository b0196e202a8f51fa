// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"petspa/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new customer account.
type SignUpInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp registers a new customer account with an email/password credential,
	// an empty grooming profile and a freshly issued loyalty card.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout invalidates the session identified by the refresh token.
	Logout(ctx context.Context, input *LogoutInput) error
}
