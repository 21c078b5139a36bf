package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateUserInput defines the mutable fields of a user account. Nil fields are
// left unchanged.
type UpdateUserInput struct {
	Email *string
	Role  *string
}

// UserUsecase defines the interface for administrative user management.
// Every operation requires the admin role.
type UserUsecase interface {
	List(ctx context.Context, actor authz.Actor) ([]*entity.User, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
