package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every user account.
func (srv *userService) List(ctx context.Context, actor authz.Actor) ([]*entity.User, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns one user account by id.
func (srv *userService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.User, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Update modifies a user's email or role.
func (srv *userService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
		user.Role = role
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// Delete removes a user account.
func (srv *userService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete user failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}
