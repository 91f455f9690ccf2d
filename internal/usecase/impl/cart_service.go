package impl

import (
	"context"
	"log/slog"
	"time"

	"vitashop/config"
	deliverycontext "vitashop/internal/delivery/context"
	"vitashop/internal/domain/constants"
	"vitashop/internal/domain/entity"
	domainerrors "vitashop/internal/domain/errors"
	"vitashop/internal/domain/repository"
	"vitashop/internal/domain/service"
	"vitashop/internal/usecase"
	"vitashop/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager      repository.TransactionManager
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	publisher      service.EventPublisher
	shipping       entity.ShippingPolicy
	now            func() time.Time
	newOrderNumber func(time.Time) string
	logger         *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	shipping := entity.DefaultShippingPolicy()
	if params.Config != nil && params.Config.Shop != nil {
		shipping = entity.ShippingPolicy{
			FreeShippingThreshold: params.Config.Shop.FreeShippingThreshold,
			FlatRate:              params.Config.Shop.ShippingCost,
		}
	}

	return &cartService{
		txManager:      params.TxManager,
		cartRepo:       params.CartRepo,
		productRepo:    params.ProductRepo,
		publisher:      params.Publisher,
		shipping:       shipping,
		now:            time.Now,
		newOrderNumber: util.NewOrderNumber,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's open cart, or nil when there is none.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	order, err := srv.cartRepo.FindOpenCartWithItems(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	view := &usecase.CartView{
		OrderNumber:  order.OrderNumber,
		SubTotalCost: util.FormatMoney(order.SubTotalCost),
		ShippingCost: util.FormatMoney(order.ShippingCost),
		TotalCost:    util.FormatMoney(order.TotalCost),
		Carts:        make([]usecase.CartLine, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		line := usecase.CartLine{
			ProductStockID:  item.ProductStockID,
			ProductQuantity: item.Quantity,
		}
		if stock := item.ProductStock; stock != nil {
			line.ProductSize = stock.Size
			line.ProductPrice = util.FormatMoney(stock.Price)
			line.ProductStock = stock.Stock
			if product := stock.Product; product != nil {
				line.Category = product.MenuName()
				line.ProductID = product.ID
				line.ProductName = product.Name
				line.ProductSubName = product.SubName
				line.ProductImageURL = product.MainImageURL()
			}
		}
		view.Carts = append(view.Carts, line)
	}

	return view, nil
}

// AddToCart adds one unit of a variant to the user's cart, creating the cart on first use.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) error {
	if input == nil || input.ProductID == uuid.Nil || !input.ProductPrice.IsPositive() {
		return domainerrors.ErrKeyError.WrapMessage("productId and productPrice are required")
	}

	variant, err := srv.productRepo.FindProductStock(ctx, input.ProductID, input.ProductSize)
	if errors.Is(err, repository.ErrProductStockNotFound) {
		return domainerrors.ErrProductDoesNotExist
	}
	if err != nil {
		return errors.Wrap(err, "failed to find product variant")
	}

	var cart *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		order, created, err := cartRepo.LockOrCreateOpenCart(ctx, userID, srv.newOrderNumber(srv.now()))
		if err != nil {
			return errors.Wrap(err, "failed to open cart")
		}
		if created {
			srv.log(ctx).Info("Cart created", slog.String("order_id", order.ID.String()))
		}

		order.AddToSubtotal(input.ProductPrice, srv.shipping)
		if err := cartRepo.UpdateCosts(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update cart costs")
		}

		// A repeated add resets the line to a single unit while the subtotal keeps accumulating.
		if err := cartRepo.UpsertItem(ctx, &entity.OrderProductStock{
			OrderID:        order.ID,
			ProductStockID: variant.ID,
			Quantity:       1,
		}); err != nil {
			return errors.Wrap(err, "failed to add cart item")
		}

		cart = order

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, srv.newEvent(ctx, constants.CartEventItemAdded, cart, variant.ID, 1))

	return nil
}

// UpdateCartItem repoints a cart line at the variant selected by (productId, productSize) and sets its
// quantity. If the cart already holds that variant, the existing line takes the quantity and the
// original line is removed.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID uuid.UUID, input *usecase.UpdateCartItemInput) error {
	if input == nil || input.ProductStockID == uuid.Nil || input.ProductID == uuid.Nil || input.ProductQuantity < 1 {
		return domainerrors.ErrKeyError.WrapMessage("productId and a productQuantity of at least 1 are required")
	}

	if _, err := srv.productRepo.FindProductStockByID(ctx, input.ProductStockID); err != nil {
		if errors.Is(err, repository.ErrProductStockNotFound) {
			return domainerrors.ErrDoesNotExist.WrapMessage("product stock not found")
		}

		return errors.Wrap(err, "failed to find product stock")
	}

	destination, err := srv.productRepo.FindProductStock(ctx, input.ProductID, input.ProductSize)
	if errors.Is(err, repository.ErrProductStockNotFound) {
		return domainerrors.ErrVariantDoesNotExist.WrapMessage("no variant for product and size")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find destination variant")
	}

	var (
		cart      *entity.Order
		eventType string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		order, err := cartRepo.LockOpenCart(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrVariantDoesNotExist.WrapMessage("no open cart")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		line, err := cartRepo.FindItem(ctx, order.ID, input.ProductStockID)
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrVariantDoesNotExist.WrapMessage("item is not in the cart")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart item")
		}

		if !destination.CanFulfill(input.ProductQuantity) {
			return domainerrors.ErrOutOfStock
		}

		cart = order
		if destination.ID != line.ProductStockID {
			existing, err := cartRepo.FindItem(ctx, order.ID, destination.ID)
			switch {
			case err == nil:
				if err := cartRepo.UpdateItem(ctx, existing.ID, destination.ID, input.ProductQuantity); err != nil {
					return errors.Wrap(err, "failed to update merged cart item")
				}
				if err := cartRepo.DeleteItem(ctx, line.ID); err != nil {
					return errors.Wrap(err, "failed to remove merged cart item")
				}
				eventType = constants.CartEventItemMerged

				return nil
			case !errors.Is(err, repository.ErrCartItemNotFound):
				return errors.Wrap(err, "failed to find destination cart item")
			}
		}

		if err := cartRepo.UpdateItem(ctx, line.ID, destination.ID, input.ProductQuantity); err != nil {
			return errors.Wrap(err, "failed to update cart item")
		}
		eventType = constants.CartEventItemUpdated

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, srv.newEvent(ctx, eventType, cart, destination.ID, input.ProductQuantity))

	return nil
}

// RemoveCartItem deletes the line for a variant and closes the cart once it is empty.
func (srv *cartService) RemoveCartItem(ctx context.Context, userID uuid.UUID, productStockID uuid.UUID) error {
	if productStockID == uuid.Nil {
		return domainerrors.ErrKeyError.WrapMessage("product stock id is required")
	}

	if _, err := srv.productRepo.FindProductStockByID(ctx, productStockID); err != nil {
		if errors.Is(err, repository.ErrProductStockNotFound) {
			return domainerrors.ErrDoesNotExist.WrapMessage("product stock not found")
		}

		return errors.Wrap(err, "failed to find product stock")
	}

	var (
		cart   *entity.Order
		closed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		order, err := cartRepo.LockOpenCart(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrDoesNotExist.WrapMessage("no open cart")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		line, err := cartRepo.FindItem(ctx, order.ID, productStockID)
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrDoesNotExist.WrapMessage("item is not in the cart")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart item")
		}

		if err := cartRepo.DeleteItem(ctx, line.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart item")
		}

		remaining, err := cartRepo.CountItems(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart items")
		}
		if remaining == 0 {
			if err := cartRepo.DeleteOrder(ctx, order.ID); err != nil {
				return errors.Wrap(err, "failed to delete empty cart")
			}
			closed = true
		}

		cart = order

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, srv.newEvent(ctx, constants.CartEventItemRemoved, cart, productStockID, 0))
	if closed {
		srv.log(ctx).Info("Cart closed", slog.String("order_id", cart.ID.String()))
		srv.publish(ctx, srv.newEvent(ctx, constants.CartEventCartClosed, cart, uuid.Nil, 0))
	}

	return nil
}

func (srv *cartService) newEvent(ctx context.Context, eventType string, order *entity.Order, productStockID uuid.UUID, quantity int) *service.CartEvent {
	event := &service.CartEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		UserID:       order.UserID.String(),
		OrderID:      order.ID.String(),
		OrderNumber:  order.OrderNumber,
		Quantity:     quantity,
		SubTotalCost: util.FormatMoney(order.SubTotalCost),
		OccurredAt:   srv.now().UTC(),
	}
	if productStockID != uuid.Nil {
		event.ProductStockID = productStockID.String()
	}

	return event
}

// publish sends a cart event after the transaction has committed. Failures are logged, not returned.
func (srv *cartService) publish(ctx context.Context, event *service.CartEvent) {
	if srv.publisher == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishCartEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish cart event",
			slog.String("event_type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
