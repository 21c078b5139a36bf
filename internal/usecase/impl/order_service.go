package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Order placement and
// cancellation are the two paths that mutate stock; both run inside a single
// transaction so stock and order rows can never disagree.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	renderer    service.ReceiptRenderer
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Renderer    service.ReceiptRenderer
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		renderer:    params.Renderer,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order for the actor.
//
// The flow is resolve, validate, commit: variants are batch-resolved (any
// missing id fails the whole order), stock is validated for every line before
// anything is written, prices are snapshotted from the variants as they are
// now, and finally the conditional stock decrements plus the order insert run
// in one transaction. The guarded UPDATE re-checks stock at write time, so two
// concurrent orders racing for the same units cannot both succeed.
func (srv *orderService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder.WrapMessage("create order failed")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}
	}

	paymentMethod := entity.PaymentMethodCashOnDelivery
	if input.PaymentMethod != "" {
		paymentMethod = entity.PaymentMethod(input.PaymentMethod)
		if !paymentMethod.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
		}
	}

	variantByID, err := srv.resolveVariants(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Validate every line before writing anything, so the caller learns about
	// the first shortfall without a partial order ever existing.
	for _, item := range input.Items {
		variant := variantByID[item.VariantID]
		if variant.Stock < item.Quantity {
			return nil, domainerrors.NewInsufficientStockError(variant.SKU, variant.Stock, item.Quantity)
		}
	}

	order := srv.buildOrder(actor.UserID, paymentMethod, input.Items, variantByID)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		for _, item := range order.Items {
			if err := productRepo.DecrementStock(ctx, item.VariantID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					// Stock moved between validation and commit; report the
					// shortfall with the quantity available right now.
					return srv.stockConflictError(ctx, item)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return repoFactory.Orders().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.Any("userID", actor.UserID), slog.String("total", order.Total.String()))

	return srv.reload(ctx, order.ID)
}

// List returns all orders for admins, the actor's own orders otherwise.
func (srv *orderService) List(ctx context.Context, actor authz.Actor) ([]*entity.Order, error) {
	var orders []*entity.Order
	var err error

	if actor.IsAdmin() {
		orders, err = srv.orderRepo.FindAll(ctx)
	} else {
		orders, err = srv.orderRepo.FindByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one order for its owner or an admin. The existence check runs
// before the ownership check: a missing order is not-found for everyone, a
// present but foreign order is forbidden.
func (srv *orderService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("get order failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := authz.CanAccessOwned(actor, order.UserID); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus applies an admin-only status transition. The role gate comes
// before the existence check, so non-admins get forbidden even for orders that
// do not exist. Moving into CANCELLED restores the stock of every item in the
// same transaction as the status write.
func (srv *orderService) UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.Orders()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("update order status failed")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !order.Status.CanTransitionTo(status) {
			return domainerrors.NewInvalidTransitionError(order.Status.String(), status.String())
		}

		// The write is guarded on the status just read, so of two admins
		// racing to transition the same order exactly one wins; the loser
		// gets a conflict instead of re-applying the transition.
		if err := orderRepo.UpdateStatus(ctx, id, order.Status, status); err != nil {
			if errors.Is(err, repository.ErrOrderStatusConflict) {
				return domainerrors.ErrOrderStatusChanged.WrapMessage("update order status failed")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		// Compensation: a cancelled order returns its reserved units. The
		// guarded status write above ensures this runs exactly once per
		// order, no matter how many cancellations race.
		if status == entity.OrderStatusCancelled {
			productRepo := repoFactory.Products()
			for _, item := range order.Items {
				if err := productRepo.IncrementStock(ctx, item.VariantID, item.Quantity); err != nil {
					return errors.Wrap(err, "failed to restore stock for cancelled order")
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("orderID", id), slog.String("status", status.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", id), slog.String("status", status.String()))

	return srv.reload(ctx, id)
}

// Receipt renders the order's PDF receipt for its owner or an admin.
func (srv *orderService) Receipt(ctx context.Context, actor authz.Actor, id uuid.UUID) (*usecase.ReceiptOutput, error) {
	order, err := srv.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	user := order.User
	if user == nil {
		user, err = srv.userRepo.FindByID(ctx, order.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order owner for receipt")
		}
	}

	address, err := srv.addressRepo.FindDefaultByUser(ctx, order.UserID)
	if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(err, "failed to load default address for receipt")
	}

	document, err := srv.renderer.Render(&service.ReceiptData{
		Order:   order,
		User:    user,
		Address: address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt")
	}

	return &usecase.ReceiptOutput{OrderID: order.ID, Document: document}, nil
}

// resolveVariants batch-loads the distinct variants referenced by the items.
// Any missing id fails the whole order with not-found.
func (srv *orderService) resolveVariants(ctx context.Context, items []usecase.OrderItemInput) (map[uuid.UUID]*entity.Variant, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.VariantID]; ok {
			continue
		}
		seen[item.VariantID] = struct{}{}
		ids = append(ids, item.VariantID)
	}

	variants, err := srv.productRepo.FindVariantsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve order variants")
	}

	if len(variants) != len(ids) {
		return nil, domainerrors.ErrVariantNotFound.WrapMessage("order variant resolution failed")
	}

	variantByID := make(map[uuid.UUID]*entity.Variant, len(variants))
	for _, variant := range variants {
		variantByID[variant.ID] = variant
	}

	return variantByID, nil
}

// buildOrder snapshots current variant prices into order items and sums the
// total.
func (srv *orderService) buildOrder(userID uuid.UUID, paymentMethod entity.PaymentMethod, items []usecase.OrderItemInput, variantByID map[uuid.UUID]*entity.Variant) *entity.Order {
	orderItems := make([]*entity.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		variant := variantByID[item.VariantID]
		orderItem := &entity.OrderItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     variant.Price,
		}
		orderItems = append(orderItems, orderItem)
		total = total.Add(orderItem.LineTotal())
	}

	return &entity.Order{
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentMethod: paymentMethod,
		Total:         total,
		Items:         orderItems,
	}
}

// stockConflictError rebuilds the insufficient-stock report with the quantity
// available at conflict time. The re-read deliberately bypasses the failing
// transaction: when the same variant appears on several order lines, the
// tx-bound view would already include this order's own uncommitted decrements
// and understate what is really available.
func (srv *orderService) stockConflictError(ctx context.Context, item *entity.OrderItem) error {
	variants, err := srv.productRepo.FindVariantsByIDs(ctx, []uuid.UUID{item.VariantID})
	if err != nil || len(variants) == 0 {
		return domainerrors.ErrVariantNotFound.WrapMessage("order variant disappeared during checkout")
	}

	return domainerrors.NewInsufficientStockError(variants[0].SKU, variants[0].Stock, item.Quantity)
}

// reload fetches the order with every association populated.
func (srv *orderService) reload(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return order, nil
}
