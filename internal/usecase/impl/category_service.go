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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a category, optionally under a parent.
func (srv *categoryService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.ErrCategorySlugTaken.WrapMessage("create category failed")
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check slug availability")
	}

	if input.ParentID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("parent category lookup failed")
			}

			return nil, errors.Wrap(err, "failed to find parent category")
		}
	}

	category := &entity.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		ParentID: input.ParentID,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, err
	}

	return category, nil
}

// List returns the whole category tree as a flat list with parent and children
// populated.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Get returns one category by id.
func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("get category failed")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Delete removes a category unless it still anchors subcategories or products.
func (srv *categoryService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("delete category failed")
		}

		return errors.Wrap(err, "failed to find category")
	}

	children, err := srv.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count subcategories")
	}
	if children > 0 {
		return domainerrors.ErrCategoryHasChildren.WrapMessage("delete category refused")
	}

	products, err := srv.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if products > 0 {
		return domainerrors.ErrCategoryHasProducts.WrapMessage("delete category refused")
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete category", slog.Any("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
