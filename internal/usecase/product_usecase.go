package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ImageInput defines an image attached to a product or variant.
type ImageInput struct {
	URL      string
	AltText  string
	Position int
}

// VariantInput defines a purchasable variant. SKU may be empty, in which case
// one is generated.
type VariantInput struct {
	SKU      string
	Price    decimal.Decimal
	Stock    int
	ValueIDs []uuid.UUID // Attribute value ids describing the configuration.
	Images   []ImageInput
}

// CreateProductInput defines the data required to create a product with its
// nested images and variants.
type CreateProductInput struct {
	Name        string
	Slug        string
	Description string
	CategoryID  uuid.UUID
	IsActive    *bool // Defaults to true when nil.
	Images      []ImageInput
	Variants    []VariantInput
}

// UpdateProductInput defines a full product update. Nil collections leave the
// existing images or variants untouched; non-nil collections replace them.
type UpdateProductInput struct {
	Name        string
	Slug        string
	Description string
	CategoryID  uuid.UUID
	IsActive    *bool
	Images      []ImageInput
	Variants    []VariantInput
}

// ProductUsecase defines the interface for catalog product management. Reads
// are public; mutations require the admin role.
type ProductUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input CreateProductInput) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
