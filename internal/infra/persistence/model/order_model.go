package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Total is the audited sum captured at
// creation time.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:PENDING"`
	PaymentMethod string          `gorm:"type:varchar(30);not null;default:CASH_ON_DELIVERY"`
	Total         decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time

	User  *UserModel        `gorm:"foreignKey:UserID"`
	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// snapshot taken when the order was created.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	VariantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt time.Time

	Variant *VariantModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
