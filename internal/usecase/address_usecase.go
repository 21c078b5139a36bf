package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddressInput defines the fields of an address create or update.
type AddressInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
}

// AddressUsecase defines the interface for address book operations. Addresses
// are owner-scoped: customers manage only their own, admins may touch any.
type AddressUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input AddressInput) (*entity.Address, error)
	List(ctx context.Context, actor authz.Actor) ([]*entity.Address, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input AddressInput) (*entity.Address, error)
	SetDefault(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Address, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
