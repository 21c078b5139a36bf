package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product groups purchasable variants under a single catalog entry.
type Product struct {
	ID          uuid.UUID
	Name        string
	Slug        string // Unique across all products.
	Description string
	CategoryID  uuid.UUID
	Category    *Category
	IsActive    bool
	Images      []*Image
	Variants    []*Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSummary is the reduced product view embedded in order items and
// receipts.
type ProductSummary struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// Summary returns the reduced view of the product.
func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{ID: p.ID, Name: p.Name, Slug: p.Slug}
}

// Variant is a specific purchasable configuration of a product, carrying its
// own SKU, price and stock. Stock is never negative.
type Variant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Product   *ProductSummary
	SKU       string // Unique; auto-generated when omitted at creation.
	Price     decimal.Decimal
	Stock     int
	Values    []*AttributeValue // Attribute values describing this configuration.
	Images    []*Image
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Image is a stored picture attached to either a product or a variant.
type Image struct {
	ID        uuid.UUID
	URL       string
	AltText   string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
