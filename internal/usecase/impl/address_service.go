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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds an address to the actor's address book. Marking it default
// clears the default flag on the actor's other addresses in the same
// transaction, so at most one address per user ever carries the flag.
func (srv *addressService) Create(ctx context.Context, actor authz.Actor, input usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{
		UserID:     actor.UserID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.Addresses()

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, actor.UserID, uuid.Nil); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// List returns the actor's addresses, default first.
func (srv *addressService) List(ctx context.Context, actor authz.Actor) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// Get returns one address. Existence is checked before ownership, so a missing
// id reports not-found rather than forbidden.
func (srv *addressService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Address, error) {
	address, err := srv.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return address, nil
}

// Update modifies an address the actor owns. Setting the default flag clears
// it from the actor's other addresses in the same transaction.
func (srv *addressService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	address.FirstName = input.FirstName
	address.LastName = input.LastName
	address.Phone = input.Phone
	address.Address = input.Address
	address.City = input.City
	address.PostalCode = input.PostalCode
	address.Country = input.Country
	address.IsDefault = input.IsDefault

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.Addresses()

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, address.UserID, address.ID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("addressID", id), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// SetDefault marks an address the actor owns as the default one.
func (srv *addressService) SetDefault(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Address, error) {
	address, err := srv.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	address.IsDefault = true

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.Addresses()

		if err := addressRepo.ClearDefault(ctx, address.UserID, address.ID); err != nil {
			return errors.Wrap(err, "failed to clear previous default address")
		}

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set default address", slog.Any("addressID", id), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// Delete removes an address the actor owns.
func (srv *addressService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// loadOwned fetches an address and verifies the actor may touch it.
func (srv *addressService) loadOwned(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound.WrapMessage("address lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	if err := authz.CanAccessOwned(actor, address.UserID); err != nil {
		return nil, err
	}

	return address, nil
}
