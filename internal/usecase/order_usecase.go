package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	VariantID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order. PaymentMethod
// may be empty, defaulting to cash on delivery.
type CreateOrderInput struct {
	Items         []OrderItemInput
	PaymentMethod string
}

// --- Output DTOs ---

// ReceiptOutput carries a rendered receipt document.
type ReceiptOutput struct {
	OrderID  uuid.UUID
	Document []byte
}

// OrderUsecase defines the interface for the order workflow: placement, listing,
// status transitions and receipt rendering. The actor is always the identity
// resolved from the session token, never from the request payload.
type OrderUsecase interface {
	// Create places an order for the actor: resolves variants, validates stock,
	// snapshots prices and commits stock decrement plus order insert in one
	// transaction.
	Create(ctx context.Context, actor authz.Actor, input CreateOrderInput) (*entity.Order, error)

	// List returns all orders for admins and the actor's own orders otherwise,
	// newest first.
	List(ctx context.Context, actor authz.Actor) ([]*entity.Order, error)

	// Get returns one order. A missing order reports not-found even to actors
	// who could not have accessed it, so existence is never leaked as a 403.
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus applies an admin-only status transition. Moving into
	// CANCELLED restores the stock of every item in the same transaction.
	UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Receipt renders the order's PDF receipt for its owner or an admin.
	Receipt(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReceiptOutput, error)
}
