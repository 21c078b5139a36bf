package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name     string
	Slug     string
	ParentID *uuid.UUID
}

// CategoryUsecase defines the interface for category tree management. Reads
// are public; mutations require the admin role.
type CategoryUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input CreateCategoryInput) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Delete refuses with a conflict while the category still has
	// subcategories or products.
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
