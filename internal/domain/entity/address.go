package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping/contact address owned by exactly one user.
// At most one address per user carries IsDefault = true; the address usecase
// maintains that invariant inside a single transaction.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FirstName  string
	LastName   string
	Phone      string
	Address    string // Street line.
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
