package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttributeHandler holds dependencies for attribute handlers.
type AttributeHandler struct {
	uc usecase.AttributeUsecase
}

// NewAttributeHandler is the constructor for AttributeHandler, injected by Fx.
func NewAttributeHandler(uc usecase.AttributeUsecase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

type createAttributeRequest struct {
	Name string `json:"name" validate:"required"`
}

type createAttributeValueRequest struct {
	Value string `json:"value" validate:"required"`
}

// Create adds an attribute.
func (h *AttributeHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid attribute input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	attribute, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateAttributeInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAttributeResponse(attribute), "attribute created")
}

// List returns every attribute with its values.
func (h *AttributeHandler) List(c echo.Context) error {
	attributes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAttributeResponses(attributes), "")
}

// Get returns one attribute with its values.
func (h *AttributeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	attribute, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAttributeResponse(attribute), "")
}

// Delete removes an attribute and its values.
func (h *AttributeHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "attribute deleted")
}

// AddValue adds a value to an attribute.
func (h *AttributeHandler) AddValue(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	attributeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createAttributeValueRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid attribute value input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	value, err := h.uc.AddValue(c.Request().Context(), actor, usecase.CreateAttributeValueInput{
		AttributeID: attributeID,
		Value:       req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAttributeValueResponse(value), "attribute value created")
}

// DeleteValue removes a single attribute value.
func (h *AttributeHandler) DeleteValue(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	valueID, err := pathID(c, "valueId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteValue(c.Request().Context(), actor, valueID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "attribute value deleted")
}
