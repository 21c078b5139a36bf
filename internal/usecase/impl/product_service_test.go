package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	service       usecase.ProductUsecase
	productRepo   *mockProductRepo
	categoryRepo  *mockCategoryRepo
	attributeRepo *mockAttributeRepo
}

func newProductServiceFixture() *productServiceFixture {
	productRepo := new(mockProductRepo)
	categoryRepo := new(mockCategoryRepo)
	attributeRepo := new(mockAttributeRepo)

	service := NewProductService(ProductServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{
			products:   productRepo,
			categories: categoryRepo,
			attributes: attributeRepo,
		}},
		ProductRepo:   productRepo,
		CategoryRepo:  categoryRepo,
		AttributeRepo: attributeRepo,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &productServiceFixture{
		service:       service,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
	}
}

func TestProductService_Create_GeneratesSKUWhenOmitted(t *testing.T) {
	fixture := newProductServiceFixture()

	categoryID := uuid.New()
	fixture.productRepo.On("FindBySlug", mock.Anything, "classic-t-shirt").
		Return(nil, repository.ErrProductNotFound)
	fixture.categoryRepo.On("FindByID", mock.Anything, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	fixture.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()

			assert.True(t, product.IsActive)
			require.Len(t, product.Variants, 2)
			assert.Equal(t, "EXPLICIT-SKU", product.Variants[0].SKU)
			assert.True(t, strings.HasPrefix(product.Variants[1].SKU, "SKU-"))
		}).
		Return(nil)
	fixture.productRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.Product{Name: "Classic T-Shirt"}, nil)

	_, err := fixture.service.Create(context.Background(), adminActor(), usecase.CreateProductInput{
		Name:       "Classic T-Shirt",
		Slug:       "classic-t-shirt",
		CategoryID: categoryID,
		Variants: []usecase.VariantInput{
			{SKU: "EXPLICIT-SKU", Price: decimal.RequireFromString("29.99"), Stock: 10},
			{Price: decimal.RequireFromString("31.99"), Stock: 5},
		},
	})
	require.NoError(t, err)

	fixture.productRepo.AssertExpectations(t)
}

func TestProductService_Create_RejectsNegativeStock(t *testing.T) {
	fixture := newProductServiceFixture()

	categoryID := uuid.New()
	fixture.productRepo.On("FindBySlug", mock.Anything, mock.Anything).
		Return(nil, repository.ErrProductNotFound)
	fixture.categoryRepo.On("FindByID", mock.Anything, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	_, err := fixture.service.Create(context.Background(), adminActor(), usecase.CreateProductInput{
		Name:       "Broken",
		Slug:       "broken",
		CategoryID: categoryID,
		Variants:   []usecase.VariantInput{{Price: decimal.New(10, 0), Stock: -1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Create_UnknownAttributeValue(t *testing.T) {
	fixture := newProductServiceFixture()

	categoryID := uuid.New()
	valueID := uuid.New()
	fixture.productRepo.On("FindBySlug", mock.Anything, mock.Anything).
		Return(nil, repository.ErrProductNotFound)
	fixture.categoryRepo.On("FindByID", mock.Anything, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)
	fixture.attributeRepo.On("FindValueByID", mock.Anything, valueID).
		Return(nil, repository.ErrAttributeValueNotFound)

	_, err := fixture.service.Create(context.Background(), adminActor(), usecase.CreateProductInput{
		Name:       "Shirt",
		Slug:       "shirt",
		CategoryID: categoryID,
		Variants: []usecase.VariantInput{
			{Price: decimal.New(20, 0), Stock: 1, ValueIDs: []uuid.UUID{valueID}},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrAttributeValueNotFound)
}

func TestProductService_Update_ReplacesCollectionsOnlyWhenGiven(t *testing.T) {
	fixture := newProductServiceFixture()

	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Old",
		Slug:       "old",
		CategoryID: uuid.New(),
		IsActive:   true,
	}

	fixture.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	fixture.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	_, err := fixture.service.Update(context.Background(), adminActor(), product.ID, usecase.UpdateProductInput{
		Name:       "New",
		Slug:       "old",
		CategoryID: product.CategoryID,
	})
	require.NoError(t, err)

	fixture.productRepo.AssertNotCalled(t, "ReplaceVariants", mock.Anything, mock.Anything, mock.Anything)
	fixture.productRepo.AssertNotCalled(t, "ReplaceImages", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Delete_RequiresAdmin(t *testing.T) {
	fixture := newProductServiceFixture()

	err := fixture.service.Delete(context.Background(), customerActor(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	fixture.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
