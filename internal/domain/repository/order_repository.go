package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when a guarded status update matches
	// no row because the order's status changed after it was read. The loser
	// of two concurrent transitions gets this instead of silently re-applying
	// the transition.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its user, items, variants and product
	// summaries populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll retrieves every order, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByUser retrieves the orders owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus atomically performs
	//   UPDATE ... SET status = to WHERE id = ? AND status = from
	// and returns ErrOrderStatusConflict when the row exists but no longer
	// carries the expected status. This guard serializes concurrent status
	// transitions the same way the conditional stock decrement serializes
	// concurrent order placement.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
