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

func newCategoryServiceFixture() (usecase.CategoryUsecase, *mockCategoryRepo) {
	categoryRepo := new(mockCategoryRepo)

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, categoryRepo
}

func TestCategoryService_Create_RequiresAdmin(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	_, err := service.Create(context.Background(), customerActor(), usecase.CreateCategoryInput{
		Name: "Apparel",
		Slug: "apparel",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)

	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_Create_SlugConflict(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	categoryRepo.On("FindBySlug", mock.Anything, "apparel").
		Return(&entity.Category{ID: uuid.New(), Slug: "apparel"}, nil)

	_, err := service.Create(context.Background(), adminActor(), usecase.CreateCategoryInput{
		Name: "Apparel",
		Slug: "apparel",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategorySlugTaken)
}

func TestCategoryService_Create_MissingParent(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	parentID := uuid.New()
	categoryRepo.On("FindBySlug", mock.Anything, "shirts").
		Return(nil, repository.ErrCategoryNotFound)
	categoryRepo.On("FindByID", mock.Anything, parentID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.Create(context.Background(), adminActor(), usecase.CreateCategoryInput{
		Name:     "Shirts",
		Slug:     "shirts",
		ParentID: &parentID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Delete_GuardedByChildren(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	id := uuid.New()
	categoryRepo.On("FindByID", mock.Anything, id).Return(&entity.Category{ID: id}, nil)
	categoryRepo.On("CountChildren", mock.Anything, id).Return(int64(2), nil)

	err := service.Delete(context.Background(), adminActor(), id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryHasChildren)

	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_Delete_GuardedByProducts(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	id := uuid.New()
	categoryRepo.On("FindByID", mock.Anything, id).Return(&entity.Category{ID: id}, nil)
	categoryRepo.On("CountChildren", mock.Anything, id).Return(int64(0), nil)
	categoryRepo.On("CountProducts", mock.Anything, id).Return(int64(5), nil)

	err := service.Delete(context.Background(), adminActor(), id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryHasProducts)
}

func TestCategoryService_Delete_EmptyCategory(t *testing.T) {
	service, categoryRepo := newCategoryServiceFixture()

	id := uuid.New()
	categoryRepo.On("FindByID", mock.Anything, id).Return(&entity.Category{ID: id}, nil)
	categoryRepo.On("CountChildren", mock.Anything, id).Return(int64(0), nil)
	categoryRepo.On("CountProducts", mock.Anything, id).Return(int64(0), nil)
	categoryRepo.On("Delete", mock.Anything, id).Return(nil)

	err := service.Delete(context.Background(), adminActor(), id)
	require.NoError(t, err)

	categoryRepo.AssertExpectations(t)
}
