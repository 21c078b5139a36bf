package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPaid,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo implements the order state machine:
// DELIVERED may only move to CANCELLED, CANCELLED is terminal, and every other
// state may move to any target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusCancelled:
		return false
	case OrderStatusDelivered:
		return target == OrderStatusCancelled
	default:
		return true
	}
}

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCard           PaymentMethod = "CARD"
	PaymentMethodMobileBanking  PaymentMethod = "MOBILE_BANKING"
)

// String returns the string representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCard, PaymentMethodMobileBanking:
		return true
	default:
		return false
	}
}

// Order is a purchase placed by a user. Total is derived from the items at
// creation time and stored for audit; it does not track later price edits.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	User          *User
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Total         decimal.Decimal
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is a single line of an order. Price is the variant's unit price
// captured at order time.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	VariantID uuid.UUID
	Variant   *Variant
	Quantity  int
	Price     decimal.Decimal
	CreatedAt time.Time
}

// LineTotal returns the captured unit price multiplied by the quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
