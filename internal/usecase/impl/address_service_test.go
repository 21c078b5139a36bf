package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixture struct {
	service     usecase.AddressUsecase
	addressRepo *mockAddressRepo
}

func newAddressServiceFixture() *addressServiceFixture {
	addressRepo := new(mockAddressRepo)

	service := NewAddressService(AddressServiceParams{
		TxManager:   &fakeTxManager{factory: &fakeRepoFactory{addresses: addressRepo}},
		AddressRepo: addressRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &addressServiceFixture{service: service, addressRepo: addressRepo}
}

func TestAddressService_Create_DefaultClearsOthers(t *testing.T) {
	fixture := newAddressServiceFixture()
	actor := customerActor()

	fixture.addressRepo.On("ClearDefault", mock.Anything, actor.UserID, uuid.Nil).Return(nil)
	fixture.addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Address")).
		Run(func(args mock.Arguments) {
			address := args.Get(1).(*entity.Address)
			address.ID = uuid.New()

			assert.Equal(t, actor.UserID, address.UserID)
			assert.True(t, address.IsDefault)
		}).
		Return(nil)

	address, err := fixture.service.Create(context.Background(), actor, usecase.AddressInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "12 Lake Road",
		City:      "Dhaka",
		Country:   "Bangladesh",
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, address.IsDefault)

	fixture.addressRepo.AssertExpectations(t)
}

func TestAddressService_Create_NonDefaultSkipsClearing(t *testing.T) {
	fixture := newAddressServiceFixture()
	actor := customerActor()

	fixture.addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil)

	_, err := fixture.service.Create(context.Background(), actor, usecase.AddressInput{City: "Dhaka"})
	require.NoError(t, err)

	fixture.addressRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddressService_Get_OwnershipEnforced(t *testing.T) {
	fixture := newAddressServiceFixture()

	address := &entity.Address{ID: uuid.New(), UserID: uuid.New()}
	fixture.addressRepo.On("FindByID", mock.Anything, address.ID).Return(address, nil)

	_, err := fixture.service.Get(context.Background(), customerActor(), address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	owner := authz.Actor{UserID: address.UserID, Role: entity.RoleCustomer}
	got, err := fixture.service.Get(context.Background(), owner, address.ID)
	require.NoError(t, err)
	assert.Equal(t, address.ID, got.ID)
}

func TestAddressService_Get_NotFound(t *testing.T) {
	fixture := newAddressServiceFixture()

	missing := uuid.New()
	fixture.addressRepo.On("FindByID", mock.Anything, missing).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fixture.service.Get(context.Background(), customerActor(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_SetDefault_KeepsTargetFlagged(t *testing.T) {
	fixture := newAddressServiceFixture()

	owner := customerActor()
	address := &entity.Address{ID: uuid.New(), UserID: owner.UserID}

	fixture.addressRepo.On("FindByID", mock.Anything, address.ID).Return(address, nil)
	// The clear must exclude the target so the invariant holds even when the
	// target was already the default.
	fixture.addressRepo.On("ClearDefault", mock.Anything, owner.UserID, address.ID).Return(nil)
	fixture.addressRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ID == address.ID && a.IsDefault
	})).Return(nil)

	got, err := fixture.service.SetDefault(context.Background(), owner, address.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	fixture.addressRepo.AssertExpectations(t)
}
