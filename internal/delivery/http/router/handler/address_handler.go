package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address book handlers.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

type addressRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func (r *addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		IsDefault:  r.IsDefault,
	}
}

// Create adds an address to the caller's address book.
func (h *AddressHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid address input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address), "address created")
}

// List returns the caller's addresses.
func (h *AddressHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "")
}

// Get returns one address.
func (h *AddressHandler) Get(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "")
}

// Update modifies an address.
func (h *AddressHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid address input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "address updated")
}

// SetDefault marks an address as the caller's default.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.uc.SetDefault(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "default address set")
}

// Delete removes an address.
func (h *AddressHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "address deleted")
}
