package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attribute names a variant dimension, e.g. "Size" or "Color".
type Attribute struct {
	ID        uuid.UUID
	Name      string // Unique.
	Values    []*AttributeValue
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttributeValue is one concrete value of an attribute, e.g. "M" for "Size".
// Value uniqueness is scoped per attribute, not global.
type AttributeValue struct {
	ID          uuid.UUID
	AttributeID uuid.UUID
	Attribute   *Attribute
	Value       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
