// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new customer account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token and the authenticated user.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new customer account.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Login authenticates any account by email and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// AdminLogin authenticates an account and additionally requires the admin
	// role; non-admin accounts are rejected as if the credentials were wrong.
	AdminLogin(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
