package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	attributeRepo repository.AttributeRepository
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	AttributeRepo repository.AttributeRepository
	Logger        *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		categoryRepo:  params.CategoryRepo,
		attributeRepo: params.AttributeRepo,
		logger:        params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a product with its nested images and variants in one transaction.
// Variants without a SKU get a generated one.
func (srv *productService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.ErrProductSlugTaken.WrapMessage("create product failed")
	} else if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to check slug availability")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("product category lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product category")
	}

	variants, err := srv.buildVariants(ctx, input.Variants)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		IsActive:    input.IsActive == nil || *input.IsActive,
		Images:      buildImages(input.Images),
		Variants:    variants,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.Products().Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, err
	}

	return srv.reload(ctx, product.ID)
}

// List returns every product, newest first.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns one product with category, images and variants.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("get product failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// Update modifies a product; non-nil image or variant collections replace the
// existing ones inside a single transaction.
func (srv *productService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("update product failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.Slug != product.Slug {
		if _, err := srv.productRepo.FindBySlug(ctx, input.Slug); err == nil {
			return nil, domainerrors.ErrProductSlugTaken.WrapMessage("update product failed")
		} else if !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(err, "failed to check slug availability")
		}
	}

	if input.CategoryID != product.CategoryID {
		if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("product category lookup failed")
			}

			return nil, errors.Wrap(err, "failed to find product category")
		}
	}

	product.Name = input.Name
	product.Slug = input.Slug
	product.Description = input.Description
	product.CategoryID = input.CategoryID
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	var variants []*entity.Variant
	if input.Variants != nil {
		variants, err = srv.buildVariants(ctx, input.Variants)
		if err != nil {
			return nil, err
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if input.Variants != nil {
			if err := productRepo.ReplaceVariants(ctx, product.ID, variants); err != nil {
				return err
			}
		}
		if input.Images != nil {
			if err := productRepo.ReplaceImages(ctx, product.ID, buildImages(input.Images)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	return srv.reload(ctx, product.ID)
}

// Delete removes a product and its nested records.
func (srv *productService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.Products().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("delete product failed")
		}

		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// buildVariants validates variant inputs and resolves their attribute values.
func (srv *productService) buildVariants(ctx context.Context, inputs []usecase.VariantInput) ([]*entity.Variant, error) {
	variants := make([]*entity.Variant, 0, len(inputs))
	for _, in := range inputs {
		if in.Stock < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("variant stock must not be negative")
		}
		if in.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("variant price must not be negative")
		}

		values := make([]*entity.AttributeValue, 0, len(in.ValueIDs))
		for _, valueID := range in.ValueIDs {
			value, err := srv.attributeRepo.FindValueByID(ctx, valueID)
			if err != nil {
				if errors.Is(err, repository.ErrAttributeValueNotFound) {
					return nil, domainerrors.ErrAttributeValueNotFound.WrapMessage("variant attribute value lookup failed")
				}

				return nil, errors.Wrap(err, "failed to resolve variant attribute value")
			}
			values = append(values, value)
		}

		sku := in.SKU
		if sku == "" {
			sku = generateSKU()
		}

		variants = append(variants, &entity.Variant{
			SKU:    sku,
			Price:  in.Price,
			Stock:  in.Stock,
			Values: values,
			Images: buildImages(in.Images),
		})
	}

	return variants, nil
}

// reload fetches the product with all associations freshly populated.
func (srv *productService) reload(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product")
	}

	return product, nil
}

func buildImages(inputs []usecase.ImageInput) []*entity.Image {
	images := make([]*entity.Image, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, &entity.Image{
			URL:      in.URL,
			AltText:  in.AltText,
			Position: in.Position,
		})
	}

	return images
}

// generateSKU produces a unique-enough SKU for variants created without one.
func generateSKU() string {
	return fmt.Sprintf("SKU-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
