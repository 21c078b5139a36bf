package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog product handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type imageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	AltText  string `json:"altText"`
	Position int    `json:"position" validate:"min=0"`
}

type variantRequest struct {
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Stock    int             `json:"stock" validate:"min=0"`
	ValueIDs []uuid.UUID     `json:"valueIds"`
	Images   []imageRequest  `json:"images" validate:"dive"`
}

type createProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Slug        string           `json:"slug" validate:"required"`
	Description string           `json:"description"`
	CategoryID  uuid.UUID        `json:"categoryId" validate:"required"`
	IsActive    *bool            `json:"isActive"`
	Images      []imageRequest   `json:"images" validate:"dive"`
	Variants    []variantRequest `json:"variants" validate:"required,min=1,dive"`
}

type updateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Slug        string           `json:"slug" validate:"required"`
	Description string           `json:"description"`
	CategoryID  uuid.UUID        `json:"categoryId" validate:"required"`
	IsActive    *bool            `json:"isActive"`
	Images      []imageRequest   `json:"images" validate:"omitempty,dive"`
	Variants    []variantRequest `json:"variants" validate:"omitempty,dive"`
}

func toImageInputs(images []imageRequest) []usecase.ImageInput {
	if images == nil {
		return nil
	}

	out := make([]usecase.ImageInput, 0, len(images))
	for _, image := range images {
		out = append(out, usecase.ImageInput{
			URL:      image.URL,
			AltText:  image.AltText,
			Position: image.Position,
		})
	}

	return out
}

func toVariantInputs(variants []variantRequest) []usecase.VariantInput {
	if variants == nil {
		return nil
	}

	out := make([]usecase.VariantInput, 0, len(variants))
	for _, variant := range variants {
		out = append(out, usecase.VariantInput{
			SKU:      variant.SKU,
			Price:    variant.Price,
			Stock:    variant.Stock,
			ValueIDs: variant.ValueIDs,
			Images:   toImageInputs(variant.Images),
		})
	}

	return out
}

// Create adds a product with its images and variants.
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid product input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
		Images:      toImageInputs(req.Images),
		Variants:    toVariantInputs(req.Variants),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "product created")
}

// List returns every product, newest first.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// Get returns one product with its variants and images.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Update modifies a product. Absent image or variant collections are kept.
func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid product input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), actor, id, usecase.UpdateProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
		Images:      toImageInputs(req.Images),
		Variants:    toVariantInputs(req.Variants),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "product updated")
}

// Delete removes a product with its variants and images.
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "product deleted")
}
