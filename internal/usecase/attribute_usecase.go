package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAttributeInput defines the data required to create an attribute.
type CreateAttributeInput struct {
	Name string
}

// CreateAttributeValueInput defines the data required to add a value to an
// attribute.
type CreateAttributeValueInput struct {
	AttributeID uuid.UUID
	Value       string
}

// AttributeUsecase defines the interface for attribute dictionary management.
// Reads are public; mutations require the admin role.
type AttributeUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input CreateAttributeInput) (*entity.Attribute, error)
	List(ctx context.Context) ([]*entity.Attribute, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Attribute, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error

	// AddValue appends a value to an attribute; the value must be unique
	// within that attribute.
	AddValue(ctx context.Context, actor authz.Actor, input CreateAttributeValueInput) (*entity.AttributeValue, error)
	DeleteValue(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
