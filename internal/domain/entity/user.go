// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. The password hash never leaves the
// persistence boundary except through this field; handlers must not serialize it.
type User struct {
	ID           uuid.UUID
	Email        string // Unique login identifier.
	PasswordHash string
	Role         Role
	Addresses    []*Address // Shipping addresses owned by this account.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DefaultAddress returns the address flagged as default, or nil when the user
// has none.
func (u *User) DefaultAddress() *Address {
	for _, addr := range u.Addresses {
		if addr.IsDefault {
			return addr
		}
	}

	return nil
}
