package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	service  usecase.UserUsecase
	userRepo *mockUserRepo
}

func newUserServiceFixture() *userServiceFixture {
	userRepo := new(mockUserRepo)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &userServiceFixture{service: service, userRepo: userRepo}
}

func TestUserService_AdminGateOnEveryOperation(t *testing.T) {
	fixture := newUserServiceFixture()
	customer := customerActor()
	id := uuid.New()

	_, err := fixture.service.List(context.Background(), customer)
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	_, err = fixture.service.Get(context.Background(), customer, id)
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	_, err = fixture.service.Update(context.Background(), customer, id, usecase.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	err = fixture.service.Delete(context.Background(), customer, id)
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	// The repo is never consulted when the gate rejects.
	fixture.userRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	fixture.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fixture.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fixture.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_List(t *testing.T) {
	fixture := newUserServiceFixture()

	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}
	fixture.userRepo.On("FindAll", mock.Anything).Return(users, nil)

	got, err := fixture.service.List(context.Background(), adminActor())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserService_Get_NotFound(t *testing.T) {
	fixture := newUserServiceFixture()

	missing := uuid.New()
	fixture.userRepo.On("FindByID", mock.Anything, missing).
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Get(context.Background(), adminActor(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Update_PromotesRole(t *testing.T) {
	fixture := newUserServiceFixture()

	user := &entity.User{ID: uuid.New(), Email: "customer@example.com", Role: entity.RoleCustomer}
	fixture.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fixture.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == user.ID && u.Role == entity.RoleAdmin && u.Email == "customer@example.com"
	})).Return(nil)

	role := entity.RoleAdmin.String()
	got, err := fixture.service.Update(context.Background(), adminActor(), user.ID, usecase.UpdateUserInput{
		Role: &role,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, got.Role)

	fixture.userRepo.AssertExpectations(t)
}

func TestUserService_Update_UnknownRoleRejected(t *testing.T) {
	fixture := newUserServiceFixture()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	fixture.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	role := "SUPERUSER"
	_, err := fixture.service.Update(context.Background(), adminActor(), user.ID, usecase.UpdateUserInput{
		Role: &role,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fixture.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_NilFieldsUnchanged(t *testing.T) {
	fixture := newUserServiceFixture()

	user := &entity.User{ID: uuid.New(), Email: "keep@example.com", Role: entity.RoleCustomer}
	fixture.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	fixture.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "keep@example.com" && u.Role == entity.RoleCustomer
	})).Return(nil)

	got, err := fixture.service.Update(context.Background(), adminActor(), user.ID, usecase.UpdateUserInput{})
	require.NoError(t, err)
	assert.Equal(t, "keep@example.com", got.Email)

	fixture.userRepo.AssertExpectations(t)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fixture := newUserServiceFixture()

	missing := uuid.New()
	fixture.userRepo.On("Delete", mock.Anything, missing).Return(repository.ErrUserNotFound)

	err := fixture.service.Delete(context.Background(), adminActor(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
