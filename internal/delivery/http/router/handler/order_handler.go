package handler

import (
	"fmt"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order workflow handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	VariantID uuid.UUID `json:"variantId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"paymentMethod"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create places an order for the authenticated user.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid order input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateOrderInput{
		Items:         items,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "order placed")
}

// List returns all orders for admins and the caller's own orders otherwise.
func (h *OrderHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// UpdateStatus applies an order status transition.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid status input", "")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "order status updated")
}

// Receipt streams the order's PDF receipt as a file download.
func (h *OrderHandler) Receipt(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.Receipt(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=receipt-%s.pdf", out.OrderID))

	return c.Blob(http.StatusOK, "application/pdf", out.Document)
}
