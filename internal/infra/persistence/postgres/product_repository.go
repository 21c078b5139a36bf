package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a product together with its images and variants. GORM cascades
// the nested associations, including the variant_attributes join rows.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSKUTaken.WrapMessage("product slug or variant SKU already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, variantM := range productM.Variants {
		product.Variants[i].ID = variantM.ID
		product.Variants[i].ProductID = variantM.ProductID
	}

	return nil
}

// FindByID retrieves a product with category, images, variants and their
// attribute values populated.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.productQuery(ctx).First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a product by its unique slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.productQuery(ctx).First(&productM, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindAll retrieves every product, newest first.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.productQuery(ctx).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// productQuery builds the shared preload chain for product reads.
func (repo *productRepository) productQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Preload("Variants").
		Preload("Variants.Values").
		Preload("Variants.Values.Attribute").
		Preload("Variants.Images")
}

// Update modifies the product's own fields. Nested images and variants are
// replaced through ReplaceImages and ReplaceVariants.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"slug":        product.Slug,
			"description": product.Description,
			"category_id": product.CategoryID,
			"is_active":   product.IsActive,
		}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductSlugTaken.WrapMessage("slug already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// ReplaceVariants removes the product's variants, their attribute links and
// variant images, then creates the given variants in their place.
func (repo *productRepository) ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []*entity.Variant) error {
	db := repo.db.WithContext(ctx)

	var existing []*model.VariantModel
	if err := db.Where("product_id = ?", productID).Find(&existing).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load variants for replacement")
	}

	for _, variantM := range existing {
		if err := db.Model(variantM).Association("Values").Clear(); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear variant attribute links")
		}
		if err := db.Delete(&model.ImageModel{}, "variant_id = ?", variantM.ID).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete variant images")
		}
	}

	if err := db.Delete(&model.VariantModel{}, "product_id = ?", productID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete variants")
	}

	for i, variant := range variants {
		variantM := fromVariantDomain(variant)
		variantM.ProductID = productID

		if err := db.Create(variantM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrSKUTaken.WrapMessage("variant SKU already in use")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
		}

		variants[i].ID = variantM.ID
		variants[i].ProductID = productID
	}

	return nil
}

// ReplaceImages removes the product's images and creates the given ones.
func (repo *productRepository) ReplaceImages(ctx context.Context, productID uuid.UUID, images []*entity.Image) error {
	db := repo.db.WithContext(ctx)

	if err := db.Delete(&model.ImageModel{}, "product_id = ?", productID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}

	for i, image := range images {
		imageM := fromImageDomain(image)
		pid := productID
		imageM.ProductID = &pid

		if err := db.Create(imageM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create product image")
		}

		images[i].ID = imageM.ID
	}

	return nil
}

// Delete removes a product and its nested variants and images.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.ReplaceVariants(ctx, id, nil); err != nil {
		return err
	}
	if err := repo.ReplaceImages(ctx, id, nil); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindVariantsByIDs batch-resolves variants with the parent product attached.
// Missing ids are absent from the result rather than reported as errors.
func (repo *productRepository) FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Variant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var variantModels []*model.VariantModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id IN ?", ids).
		Find(&variantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve variants")
	}

	variants := make([]*entity.Variant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// DecrementStock performs the conditional atomic decrement
//
//	UPDATE product_variants SET stock = stock - ? WHERE id = ? AND stock >= ?
//
// An affected-row count of zero means either the variant is gone or its stock
// dropped below the requested quantity since it was read; both surface as
// ErrStockConflict and abort the surrounding transaction.
func (repo *productRepository) DecrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ? AND stock >= ?", variantID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

// IncrementStock adds quantity back to the variant's stock.
func (repo *productRepository) IncrementStock(ctx context.Context, variantID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ?", variantID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.Image, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, toImageDomain(imageM))
	}

	variants := make([]*entity.Variant, 0, len(data.Variants))
	for _, variantM := range data.Variants {
		variants = append(variants, toVariantDomain(variantM))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		IsActive:    data.IsActive,
		Images:      images,
		Variants:    variants,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]*model.ImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, fromImageDomain(image))
	}

	variants := make([]*model.VariantModel, 0, len(data.Variants))
	for _, variant := range data.Variants {
		variants = append(variants, fromVariantDomain(variant))
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		IsActive:    data.IsActive,
		Images:      images,
		Variants:    variants,
	}
}

func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	values := make([]*entity.AttributeValue, 0, len(data.Values))
	for _, valueM := range data.Values {
		values = append(values, toAttributeValueDomain(valueM))
	}

	images := make([]*entity.Image, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, toImageDomain(imageM))
	}

	var product *entity.ProductSummary
	if data.Product != nil {
		product = &entity.ProductSummary{
			ID:   data.Product.ID,
			Name: data.Product.Name,
			Slug: data.Product.Slug,
		}
	}

	return &entity.Variant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Product:   product,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		Values:    values,
		Images:    images,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromVariantDomain(data *entity.Variant) *model.VariantModel {
	if data == nil {
		return nil
	}

	values := make([]*model.AttributeValueModel, 0, len(data.Values))
	for _, value := range data.Values {
		values = append(values, fromAttributeValueDomain(value))
	}

	images := make([]*model.ImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, fromImageDomain(image))
	}

	return &model.VariantModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		Values:    values,
		Images:    images,
	}
}

func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:        data.ID,
		URL:       data.URL,
		AltText:   data.AltText,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:       data.ID,
		URL:      data.URL,
		AltText:  data.AltText,
		Position: data.Position,
	}
}
