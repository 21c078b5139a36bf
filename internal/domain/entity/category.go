package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog tree. ParentID is nil for root categories.
// A category cannot be deleted while it still has children or products.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string // Unique across all categories.
	ParentID  *uuid.UUID
	Parent    *Category
	Children  []*Category
	CreatedAt time.Time
	UpdatedAt time.Time
}
