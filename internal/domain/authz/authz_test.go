package authz

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccessOwned_Owner(t *testing.T) {
	ownerID := uuid.New()
	actor := Actor{UserID: ownerID, Role: entity.RoleCustomer}

	require.NoError(t, CanAccessOwned(actor, ownerID))
}

func TestCanAccessOwned_Admin(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	require.NoError(t, CanAccessOwned(actor, uuid.New()))
}

func TestCanAccessOwned_Stranger(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	err := CanAccessOwned(actor, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequireRole_AdminGate(t *testing.T) {
	admin := Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	customer := Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	require.NoError(t, RequireRole(admin, entity.RoleAdmin))
	assert.ErrorIs(t, RequireRole(customer, entity.RoleAdmin), domainerrors.ErrAdminOnly)
}
