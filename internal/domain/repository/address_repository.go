package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address persistence.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses of a user, default address first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultByUser retrieves the user's default address.
	// Returns ErrAddressNotFound if the user has no default address.
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// ClearDefault unsets the default flag on all of the user's addresses,
	// optionally keeping one address untouched (pass uuid.Nil to clear all).
	ClearDefault(ctx context.Context, userID uuid.UUID, except uuid.UUID) error

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
