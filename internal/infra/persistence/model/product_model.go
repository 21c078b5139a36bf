package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel  `gorm:"foreignKey:CategoryID"`
	Images   []*ImageModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants []*VariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// VariantModel mirrors the 'product_variants' table. Stock is kept
// non-negative by the conditional decrement in the repository; the CHECK
// constraint is the database-level backstop.
type VariantModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	SKU       string          `gorm:"column:sku;type:varchar(100);uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Stock     int             `gorm:"not null;default:0;check:stock >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel          `gorm:"foreignKey:ProductID"`
	Values  []*AttributeValueModel `gorm:"many2many:variant_attributes;"`
	Images  []*ImageModel          `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "product_variants"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *VariantModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ImageModel mirrors the 'images' table. Exactly one of ProductID/VariantID is
// set, depending on the owner.
type ImageModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	URL       string     `gorm:"type:varchar(500);not null"`
	AltText   string     `gorm:"type:varchar(255)"`
	Position  int        `gorm:"not null;default:0"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	VariantID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *ImageModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
