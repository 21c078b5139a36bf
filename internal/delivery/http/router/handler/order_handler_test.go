package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderUsecase struct {
	mock.Mock
}

func (m *mockOrderUsecase) Create(ctx context.Context, actor authz.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderUsecase) List(ctx context.Context, actor authz.Actor) ([]*entity.Order, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *mockOrderUsecase) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderUsecase) UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, actor, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderUsecase) Receipt(ctx context.Context, actor authz.Actor, id uuid.UUID) (*usecase.ReceiptOutput, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ReceiptOutput), args.Error(1)
}

func TestOrderHandler_Receipt_DownloadHeaders(t *testing.T) {
	orderID := uuid.New()
	actor := authz.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	document := []byte("%PDF-1.4 fake receipt body")

	uc := new(mockOrderUsecase)
	uc.On("Receipt", mock.Anything, actor, orderID).
		Return(&usecase.ReceiptOutput{OrderID: orderID, Document: document}, nil)
	handler := NewOrderHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String()+"/receipt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	deliverycontext.SetActor(c, actor)

	require.NoError(t, handler.Receipt(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=receipt-"+orderID.String()+".pdf",
		rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, document, rec.Body.Bytes())
	uc.AssertExpectations(t)
}

func TestOrderHandler_Receipt_RequiresActor(t *testing.T) {
	uc := new(mockOrderUsecase)
	handler := NewOrderHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString()+"/receipt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Receipt(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "Receipt", mock.Anything, mock.Anything, mock.Anything)
}
