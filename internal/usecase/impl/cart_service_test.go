package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"vitashop/config"
	"vitashop/internal/domain/constants"
	"vitashop/internal/domain/entity"
	domainerrors "vitashop/internal/domain/errors"
	"vitashop/internal/domain/repository"
	"vitashop/internal/domain/service"
	mockRepo "vitashop/internal/mocks/repository"
	mockSvc "vitashop/internal/mocks/service"
	"vitashop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
}

func testShopConfig() *config.Config {
	return &config.Config{
		Shop: &config.ShopConfig{
			FreeShippingThreshold: decimal.NewFromInt(20),
			ShippingCost:          decimal.NewFromInt(5),
		},
	}
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Config:      testShopConfig(),
		Logger:      slog.New(slog.DiscardHandler),
	})

	return cartServiceFixtures{
		service:     svc,
		txManager:   txManager,
		repoFactory: repoFactory,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// expectTransaction runs the transaction callback against the mocked repositories.
func (f cartServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
	f.repoFactory.EXPECT().NewCartRepository().Return(f.cartRepo).Maybe()
}

func (f cartServiceFixtures) expectEvent(eventType string) {
	f.publisher.EXPECT().
		PublishCartEvent(mock.Anything, mock.MatchedBy(func(event *service.CartEvent) bool {
			return event.Type == eventType
		})).
		Return(nil).
		Once()
}

func TestCartService_AddToCart_CreatesCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	variant := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Size: "60", Price: decimal.RequireFromString("12.5"), Stock: 3}
	cart := &entity.Order{ID: uuid.New(), UserID: userID, OrderNumber: "202403051234", Status: entity.OrderStatusCart}

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "60").Return(variant, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().
		LockOrCreateOpenCart(ctx, userID, mock.AnythingOfType("string")).
		Return(cart, true, nil)
	fx.cartRepo.EXPECT().
		UpdateCosts(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.SubTotalCost.Equal(decimal.RequireFromString("12.5")) &&
				order.ShippingCost.Equal(decimal.NewFromInt(5)) &&
				order.TotalCost.Equal(decimal.RequireFromString("17.5"))
		})).
		Return(nil)
	fx.cartRepo.EXPECT().
		UpsertItem(ctx, mock.MatchedBy(func(item *entity.OrderProductStock) bool {
			return item.OrderID == cart.ID && item.ProductStockID == variant.ID && item.Quantity == 1
		})).
		Return(nil)
	fx.expectEvent(constants.CartEventItemAdded)

	err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{
		ProductID:    productID,
		ProductSize:  "60",
		ProductPrice: decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)
}

func TestCartService_AddToCart_FreeShippingAtThreshold(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	variant := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(10), Stock: 1}
	cart := &entity.Order{
		ID:           uuid.New(),
		UserID:       userID,
		SubTotalCost: decimal.NewFromInt(10),
		ShippingCost: decimal.NewFromInt(5),
		TotalCost:    decimal.NewFromInt(15),
	}

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "").Return(variant, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOrCreateOpenCart(ctx, userID, mock.Anything).Return(cart, false, nil)
	fx.cartRepo.EXPECT().UpdateCosts(ctx, cart).Return(nil)
	fx.cartRepo.EXPECT().UpsertItem(ctx, mock.Anything).Return(nil)
	fx.expectEvent(constants.CartEventItemAdded)

	err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, ProductPrice: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, cart.SubTotalCost.Equal(decimal.NewFromInt(20)))
	assert.True(t, cart.ShippingCost.IsZero())
	assert.True(t, cart.TotalCost.Equal(decimal.NewFromInt(20)))
}

func TestCartService_AddToCart_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.AddToCartInput
	}{
		{name: "nil input", input: nil},
		{name: "missing product", input: &usecase.AddToCartInput{ProductPrice: decimal.NewFromInt(5)}},
		{name: "zero price", input: &usecase.AddToCartInput{ProductID: uuid.New()}},
		{name: "negative price", input: &usecase.AddToCartInput{ProductID: uuid.New(), ProductPrice: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			err := fx.service.AddToCart(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrKeyError)
		})
	}
}

func TestCartService_AddToCart_UnknownVariant(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "XL").Return(nil, repository.ErrProductStockNotFound)

	err := fx.service.AddToCart(ctx, uuid.New(), &usecase.AddToCartInput{
		ProductID:    productID,
		ProductSize:  "XL",
		ProductPrice: decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductDoesNotExist)
}

func TestCartService_AddToCart_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	variant := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(5), Stock: 1}
	cart := &entity.Order{ID: uuid.New(), UserID: userID}

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "").Return(variant, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOrCreateOpenCart(ctx, userID, mock.Anything).Return(cart, true, nil)
	fx.cartRepo.EXPECT().UpdateCosts(ctx, cart).Return(nil)
	fx.cartRepo.EXPECT().UpsertItem(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishCartEvent(mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, ProductPrice: decimal.NewFromInt(5)})
	require.NoError(t, err)
}

func TestCartService_AddToCart_TransactionError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	variant := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(5), Stock: 1}
	dbErr := errors.New("deadlock detected")

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "").Return(variant, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOrCreateOpenCart(ctx, userID, mock.Anything).Return(nil, false, dbErr)

	err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, ProductPrice: decimal.NewFromInt(5)})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindOpenCartWithItems(ctx, userID).Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestCartService_GetCart_View(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Whey",
		SubName:  "Chocolate",
		Category: &entity.Category{Name: "Powders", Menu: &entity.Menu{Name: "protein"}},
		Images:   []entity.Image{{ImageURL: "https://img.example.com/whey.png", IsMain: true}},
	}
	variant := &entity.ProductStock{
		ID:        uuid.New(),
		ProductID: product.ID,
		Product:   product,
		Size:      "1kg",
		Price:     decimal.RequireFromString("55.5"),
		Stock:     7,
	}
	cart := &entity.Order{
		ID:           uuid.New(),
		UserID:       userID,
		OrderNumber:  "202403051234",
		SubTotalCost: decimal.RequireFromString("55.5"),
		TotalCost:    decimal.RequireFromString("55.5"),
		Items: []entity.OrderProductStock{
			{ID: uuid.New(), ProductStockID: variant.ID, ProductStock: variant, Quantity: 2},
		},
	}

	fx.cartRepo.EXPECT().FindOpenCartWithItems(ctx, userID).Return(cart, nil)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "202403051234", view.OrderNumber)
	assert.Equal(t, "55.50", view.SubTotalCost)
	assert.Equal(t, "0.00", view.ShippingCost)
	assert.Equal(t, "55.50", view.TotalCost)
	require.Len(t, view.Carts, 1)

	assert.Equal(t, usecase.CartLine{
		Category:        "protein",
		ProductID:       product.ID,
		ProductName:     "Whey",
		ProductSubName:  "Chocolate",
		ProductStockID:  variant.ID,
		ProductSize:     "1kg",
		ProductPrice:    "55.50",
		ProductStock:    7,
		ProductImageURL: "https://img.example.com/whey.png",
		ProductQuantity: 2,
	}, view.Carts[0])
}

// updateFixture prepares the lookups shared by the update tests.
type updateFixture struct {
	userID      uuid.UUID
	productID   uuid.UUID
	current     *entity.ProductStock
	destination *entity.ProductStock
	cart        *entity.Order
	line        *entity.OrderProductStock
}

func newUpdateFixture(destinationStock int) updateFixture {
	userID := uuid.New()
	productID := uuid.New()
	current := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Size: "S", Stock: 10}
	destination := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Size: "M", Stock: destinationStock}
	cart := &entity.Order{ID: uuid.New(), UserID: userID}

	return updateFixture{
		userID:      userID,
		productID:   productID,
		current:     current,
		destination: destination,
		cart:        cart,
		line:        &entity.OrderProductStock{ID: uuid.New(), OrderID: cart.ID, ProductStockID: current.ID, Quantity: 1},
	}
}

func (u updateFixture) input(quantity int) *usecase.UpdateCartItemInput {
	return &usecase.UpdateCartItemInput{
		ProductStockID:  u.current.ID,
		ProductID:       u.productID,
		ProductSize:     u.destination.Size,
		ProductQuantity: quantity,
	}
}

func (f cartServiceFixtures) expectUpdateLookups(ctx context.Context, u updateFixture) {
	f.productRepo.EXPECT().FindProductStockByID(ctx, u.current.ID).Return(u.current, nil)
	f.productRepo.EXPECT().FindProductStock(ctx, u.productID, u.destination.Size).Return(u.destination, nil)
	f.expectTransaction(ctx)
	f.cartRepo.EXPECT().LockOpenCart(ctx, u.userID).Return(u.cart, nil)
	f.cartRepo.EXPECT().FindItem(ctx, u.cart.ID, u.current.ID).Return(u.line, nil)
}

func TestCartService_UpdateCartItem_Repoint(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	u := newUpdateFixture(5)

	fx.expectUpdateLookups(ctx, u)
	fx.cartRepo.EXPECT().FindItem(ctx, u.cart.ID, u.destination.ID).Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().UpdateItem(ctx, u.line.ID, u.destination.ID, 3).Return(nil)
	fx.expectEvent(constants.CartEventItemUpdated)

	err := fx.service.UpdateCartItem(ctx, u.userID, u.input(3))
	require.NoError(t, err)
}

func TestCartService_UpdateCartItem_SameVariantQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	u := newUpdateFixture(5)
	u.destination = u.current

	fx.expectUpdateLookups(ctx, u)
	fx.cartRepo.EXPECT().UpdateItem(ctx, u.line.ID, u.current.ID, 4).Return(nil)
	fx.expectEvent(constants.CartEventItemUpdated)

	err := fx.service.UpdateCartItem(ctx, u.userID, u.input(4))
	require.NoError(t, err)
}

func TestCartService_UpdateCartItem_MergesIntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	u := newUpdateFixture(5)
	existing := &entity.OrderProductStock{ID: uuid.New(), OrderID: u.cart.ID, ProductStockID: u.destination.ID, Quantity: 1}

	fx.expectUpdateLookups(ctx, u)
	fx.cartRepo.EXPECT().FindItem(ctx, u.cart.ID, u.destination.ID).Return(existing, nil)
	fx.cartRepo.EXPECT().UpdateItem(ctx, existing.ID, u.destination.ID, 2).Return(nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, u.line.ID).Return(nil)
	fx.expectEvent(constants.CartEventItemMerged)

	err := fx.service.UpdateCartItem(ctx, u.userID, u.input(2))
	require.NoError(t, err)
}

func TestCartService_UpdateCartItem_OutOfStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	u := newUpdateFixture(2)

	fx.expectUpdateLookups(ctx, u)

	err := fx.service.UpdateCartItem(ctx, u.userID, u.input(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOutOfStock)
}

func TestCartService_UpdateCartItem_LookupErrors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		fx := createTestCartService(t)
		u := newUpdateFixture(5)

		err := fx.service.UpdateCartItem(context.Background(), u.userID, u.input(0))
		assert.ErrorIs(t, err, domainerrors.ErrKeyError)
	})

	t.Run("unknown path variant", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		u := newUpdateFixture(5)

		fx.productRepo.EXPECT().FindProductStockByID(ctx, u.current.ID).Return(nil, repository.ErrProductStockNotFound)

		err := fx.service.UpdateCartItem(ctx, u.userID, u.input(1))
		assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
		assert.NotErrorIs(t, err, domainerrors.ErrVariantDoesNotExist)
	})

	t.Run("unknown destination variant", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		u := newUpdateFixture(5)

		fx.productRepo.EXPECT().FindProductStockByID(ctx, u.current.ID).Return(u.current, nil)
		fx.productRepo.EXPECT().FindProductStock(ctx, u.productID, "M").Return(nil, repository.ErrProductStockNotFound)

		err := fx.service.UpdateCartItem(ctx, u.userID, u.input(1))
		assert.ErrorIs(t, err, domainerrors.ErrVariantDoesNotExist)
	})

	t.Run("no open cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		u := newUpdateFixture(5)

		fx.productRepo.EXPECT().FindProductStockByID(ctx, u.current.ID).Return(u.current, nil)
		fx.productRepo.EXPECT().FindProductStock(ctx, u.productID, "M").Return(u.destination, nil)
		fx.expectTransaction(ctx)
		fx.cartRepo.EXPECT().LockOpenCart(ctx, u.userID).Return(nil, repository.ErrCartNotFound)

		err := fx.service.UpdateCartItem(ctx, u.userID, u.input(1))
		assert.ErrorIs(t, err, domainerrors.ErrVariantDoesNotExist)
	})

	t.Run("line not in cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		u := newUpdateFixture(5)

		fx.productRepo.EXPECT().FindProductStockByID(ctx, u.current.ID).Return(u.current, nil)
		fx.productRepo.EXPECT().FindProductStock(ctx, u.productID, "M").Return(u.destination, nil)
		fx.expectTransaction(ctx)
		fx.cartRepo.EXPECT().LockOpenCart(ctx, u.userID).Return(u.cart, nil)
		fx.cartRepo.EXPECT().FindItem(ctx, u.cart.ID, u.current.ID).Return(nil, repository.ErrCartItemNotFound)

		err := fx.service.UpdateCartItem(ctx, u.userID, u.input(1))
		assert.ErrorIs(t, err, domainerrors.ErrVariantDoesNotExist)
	})
}

func TestCartService_RemoveCartItem_ClosesEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	stock := &entity.ProductStock{ID: uuid.New()}
	cart := &entity.Order{ID: uuid.New(), UserID: userID}
	line := &entity.OrderProductStock{ID: uuid.New(), OrderID: cart.ID, ProductStockID: stock.ID}

	fx.productRepo.EXPECT().FindProductStockByID(ctx, stock.ID).Return(stock, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOpenCart(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, stock.ID).Return(line, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, line.ID).Return(nil)
	fx.cartRepo.EXPECT().CountItems(ctx, cart.ID).Return(int64(0), nil)
	fx.cartRepo.EXPECT().DeleteOrder(ctx, cart.ID).Return(nil)
	fx.expectEvent(constants.CartEventItemRemoved)
	fx.expectEvent(constants.CartEventCartClosed)

	err := fx.service.RemoveCartItem(ctx, userID, stock.ID)
	require.NoError(t, err)
}

func TestCartService_RemoveCartItem_KeepsNonEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	stock := &entity.ProductStock{ID: uuid.New()}
	cart := &entity.Order{ID: uuid.New(), UserID: userID}
	line := &entity.OrderProductStock{ID: uuid.New(), OrderID: cart.ID, ProductStockID: stock.ID}

	fx.productRepo.EXPECT().FindProductStockByID(ctx, stock.ID).Return(stock, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOpenCart(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, stock.ID).Return(line, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, line.ID).Return(nil)
	fx.cartRepo.EXPECT().CountItems(ctx, cart.ID).Return(int64(1), nil)
	fx.expectEvent(constants.CartEventItemRemoved)

	err := fx.service.RemoveCartItem(ctx, userID, stock.ID)
	require.NoError(t, err)
}

func TestCartService_RemoveCartItem_NotFound(t *testing.T) {
	t.Run("unknown variant", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		stockID := uuid.New()

		fx.productRepo.EXPECT().FindProductStockByID(ctx, stockID).Return(nil, repository.ErrProductStockNotFound)

		err := fx.service.RemoveCartItem(ctx, uuid.New(), stockID)
		assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
	})

	t.Run("no open cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		userID := uuid.New()
		stock := &entity.ProductStock{ID: uuid.New()}

		fx.productRepo.EXPECT().FindProductStockByID(ctx, stock.ID).Return(stock, nil)
		fx.expectTransaction(ctx)
		fx.cartRepo.EXPECT().LockOpenCart(ctx, userID).Return(nil, repository.ErrCartNotFound)

		err := fx.service.RemoveCartItem(ctx, userID, stock.ID)
		assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
	})

	t.Run("line not in cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		userID := uuid.New()
		stock := &entity.ProductStock{ID: uuid.New()}
		cart := &entity.Order{ID: uuid.New(), UserID: userID}

		fx.productRepo.EXPECT().FindProductStockByID(ctx, stock.ID).Return(stock, nil)
		fx.expectTransaction(ctx)
		fx.cartRepo.EXPECT().LockOpenCart(ctx, userID).Return(cart, nil)
		fx.cartRepo.EXPECT().FindItem(ctx, cart.ID, stock.ID).Return(nil, repository.ErrCartItemNotFound)

		err := fx.service.RemoveCartItem(ctx, userID, stock.ID)
		assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
	})
}

func TestCartService_EventCarriesOrderDetails(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	variant := &entity.ProductStock{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(8), Stock: 1}
	cart := &entity.Order{ID: uuid.New(), UserID: userID, OrderNumber: "202401011000"}

	fx.productRepo.EXPECT().FindProductStock(ctx, productID, "").Return(variant, nil)
	fx.expectTransaction(ctx)
	fx.cartRepo.EXPECT().LockOrCreateOpenCart(ctx, userID, mock.Anything).Return(cart, true, nil)
	fx.cartRepo.EXPECT().UpdateCosts(ctx, cart).Return(nil)
	fx.cartRepo.EXPECT().UpsertItem(ctx, mock.Anything).Return(nil)

	var published *service.CartEvent
	fx.publisher.EXPECT().
		PublishCartEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.CartEvent) { published = event }).
		Return(nil)

	err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: productID, ProductPrice: decimal.NewFromInt(8)})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.NotEmpty(t, published.EventID)
	assert.Equal(t, userID.String(), published.UserID)
	assert.Equal(t, cart.ID.String(), published.OrderID)
	assert.Equal(t, "202401011000", published.OrderNumber)
	assert.Equal(t, variant.ID.String(), published.ProductStockID)
	assert.Equal(t, 1, published.Quantity)
	assert.Equal(t, "8.00", published.SubTotalCost)
	assert.WithinDuration(t, time.Now().UTC(), published.OccurredAt, time.Minute)
}
