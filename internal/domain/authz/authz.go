// Package authz provides the single authorization predicate applied across
// resources: ownership-or-admin access and role gating. Handlers build an
// Actor from the authenticated session only, never from request payloads.
package authz

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// Actor is the trusted identity resolved from the session token.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanAccessOwned allows access to a resource when the actor owns it or is an
// admin. Returns ErrForbidden otherwise.
func CanAccessOwned(actor Actor, ownerID uuid.UUID) error {
	if actor.IsAdmin() || actor.UserID == ownerID {
		return nil
	}

	return domainerrors.ErrForbidden
}

// RequireRole allows access only to actors carrying the required role.
func RequireRole(actor Actor, required entity.Role) error {
	if actor.Role == required {
		return nil
	}
	if required == entity.RoleAdmin {
		return domainerrors.ErrAdminOnly
	}

	return domainerrors.ErrForbidden
}
