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

// attributeService implements the AttributeUsecase interface.
type attributeService struct {
	attributeRepo repository.AttributeRepository
	logger        *slog.Logger
}

// AttributeServiceParams holds dependencies for attributeService, injected by Fx.
type AttributeServiceParams struct {
	fx.In

	AttributeRepo repository.AttributeRepository
	Logger        *slog.Logger
}

// NewAttributeService is the constructor for attributeService.
func NewAttributeService(params AttributeServiceParams) usecase.AttributeUsecase {
	return &attributeService{
		attributeRepo: params.AttributeRepo,
		logger:        params.Logger,
	}
}

func (srv *attributeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds an attribute with a unique name.
func (srv *attributeService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateAttributeInput) (*entity.Attribute, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := srv.attributeRepo.FindAttributeByName(ctx, input.Name); err == nil {
		return nil, domainerrors.ErrAttributeNameTaken.WrapMessage("create attribute failed")
	} else if !errors.Is(err, repository.ErrAttributeNotFound) {
		return nil, errors.Wrap(err, "failed to check attribute name availability")
	}

	attribute := &entity.Attribute{Name: input.Name}

	if err := srv.attributeRepo.CreateAttribute(ctx, attribute); err != nil {
		srv.log(ctx).Error("Failed to create attribute", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return attribute, nil
}

// List returns every attribute with its values.
func (srv *attributeService) List(ctx context.Context) ([]*entity.Attribute, error) {
	attributes, err := srv.attributeRepo.FindAllAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	return attributes, nil
}

// Get returns one attribute with its values.
func (srv *attributeService) Get(ctx context.Context, id uuid.UUID) (*entity.Attribute, error) {
	attribute, err := srv.attributeRepo.FindAttributeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound.WrapMessage("get attribute failed")
		}

		return nil, errors.Wrap(err, "failed to find attribute")
	}

	return attribute, nil
}

// Delete removes an attribute and its values.
func (srv *attributeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	if err := srv.attributeRepo.DeleteAttribute(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return domainerrors.ErrAttributeNotFound.WrapMessage("delete attribute failed")
		}

		return errors.Wrap(err, "failed to delete attribute")
	}

	return nil
}

// AddValue appends a value to an attribute, unique within that attribute.
func (srv *attributeService) AddValue(ctx context.Context, actor authz.Actor, input usecase.CreateAttributeValueInput) (*entity.AttributeValue, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := srv.attributeRepo.FindAttributeByID(ctx, input.AttributeID); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound.WrapMessage("add attribute value failed")
		}

		return nil, errors.Wrap(err, "failed to find attribute")
	}

	if _, err := srv.attributeRepo.FindValue(ctx, input.AttributeID, input.Value); err == nil {
		return nil, domainerrors.ErrAttributeValueTaken.WrapMessage("add attribute value failed")
	} else if !errors.Is(err, repository.ErrAttributeValueNotFound) {
		return nil, errors.Wrap(err, "failed to check value availability")
	}

	value := &entity.AttributeValue{
		AttributeID: input.AttributeID,
		Value:       input.Value,
	}

	if err := srv.attributeRepo.CreateValue(ctx, value); err != nil {
		srv.log(ctx).Error("Failed to create attribute value", slog.Any("attributeID", input.AttributeID), slog.Any("error", err))

		return nil, err
	}

	return value, nil
}

// DeleteValue removes a single attribute value.
func (srv *attributeService) DeleteValue(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	if err := srv.attributeRepo.DeleteValue(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAttributeValueNotFound) {
			return domainerrors.ErrAttributeValueNotFound.WrapMessage("delete attribute value failed")
		}

		return errors.Wrap(err, "failed to delete attribute value")
	}

	return nil
}
