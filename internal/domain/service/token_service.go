// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Session is the trusted identity carried by a validated access token.
type Session struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks a token string and resolves the session it carries.
	ValidateToken(tokenString string) (*Session, error)
}
