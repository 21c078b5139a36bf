// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization label carried by a user account.
type Role string

const (
	// RoleAdmin grants access to catalog management, user administration and
	// order status transitions.
	RoleAdmin Role = "ADMIN"
	// RoleCustomer is the default role for self-registered accounts.
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}
