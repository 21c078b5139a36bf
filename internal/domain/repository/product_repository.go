package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a variant is not found.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrStockConflict is returned when a conditional stock decrement affects
	// no rows, meaning available stock was below the requested quantity at
	// execution time.
	ErrStockConflict = errors.New("stock below requested quantity")
)

// ProductRepository defines the interface for product and variant persistence.
// DecrementStock and IncrementStock are the stock-mutation primitives the order
// workflow uses inside a caller-supplied transaction.
type ProductRepository interface {
	// Create persists a product with its nested images and variants.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with category, images and variants.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindAll retrieves every product with category, images and variants.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Update modifies product fields (not nested collections).
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceVariants deletes the product's variants (and their attribute
	// links) and creates the given ones in their place.
	ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []*entity.Variant) error

	// ReplaceImages deletes the product's images and creates the given ones.
	ReplaceImages(ctx context.Context, productID uuid.UUID, images []*entity.Image) error

	// Delete removes a product and its nested records.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindVariantsByIDs batch-resolves variants carrying current price, stock,
	// SKU and the parent product summary. Missing ids are simply absent from
	// the result; callers decide whether that is an error.
	FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Variant, error)

	// DecrementStock atomically performs
	//   UPDATE ... SET stock = stock - quantity WHERE id = ? AND stock >= quantity
	// and returns ErrStockConflict when no row qualified. This is the
	// serialization point that prevents overselling under concurrent orders.
	DecrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity back to the variant's stock.
	// Used as the compensating action when an order is cancelled.
	IncrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error
}
