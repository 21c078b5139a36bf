package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for attribute persistence.
var (
	// ErrAttributeNotFound is returned when an attribute is not found.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrAttributeValueNotFound is returned when an attribute value is not found.
	ErrAttributeValueNotFound = errors.New("attribute value not found")
)

// AttributeRepository defines the interface for attribute and attribute value
// persistence.
type AttributeRepository interface {
	// CreateAttribute persists a new attribute.
	CreateAttribute(ctx context.Context, attribute *entity.Attribute) error

	// FindAttributeByID retrieves an attribute with its values.
	FindAttributeByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error)

	// FindAttributeByName retrieves an attribute by its unique name.
	FindAttributeByName(ctx context.Context, name string) (*entity.Attribute, error)

	// FindAllAttributes retrieves every attribute with values populated.
	FindAllAttributes(ctx context.Context) ([]*entity.Attribute, error)

	// DeleteAttribute removes an attribute and its values.
	DeleteAttribute(ctx context.Context, id uuid.UUID) error

	// CreateValue persists a new value under an attribute.
	CreateValue(ctx context.Context, value *entity.AttributeValue) error

	// FindValueByID retrieves an attribute value by ID.
	FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error)

	// FindValue retrieves a value by attribute and literal value.
	// Returns ErrAttributeValueNotFound when absent; used to enforce
	// per-attribute value uniqueness.
	FindValue(ctx context.Context, attributeID uuid.UUID, value string) (*entity.AttributeValue, error)

	// DeleteValue removes an attribute value by ID.
	DeleteValue(ctx context.Context, id uuid.UUID) error
}
