package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category with its parent and children.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug retrieves a category by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// FindAll retrieves every category with parent and children populated.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// CountChildren returns the number of direct subcategories.
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)

	// CountProducts returns the number of products referencing the category.
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
