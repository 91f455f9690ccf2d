package impl

import (
	"context"
	"log/slog"
	"testing"

	"vitashop/config"
	"vitashop/internal/domain/constants"
	"vitashop/internal/domain/entity"
	domainerrors "vitashop/internal/domain/errors"
	"vitashop/internal/domain/repository"
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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	catalogRepo *mockRepo.MockCatalogRepository
	cache       *mockSvc.MockCatalogCache
	qrService   *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	cache := mockSvc.NewMockCatalogCache(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		CatalogRepo: catalogRepo,
		Cache:       cache,
		QRService:   qrService,
		Config: &config.Config{
			Shop: &config.ShopConfig{VitaminsMenu: "vitamins", SimilarProductLimit: 2},
		},
		Logger: slog.New(slog.DiscardHandler),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		cache:       cache,
		qrService:   qrService,
	}
}

// expectCacheMiss makes every cache read miss and every write succeed.
func (f catalogServiceFixtures) expectCacheMiss() {
	f.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	f.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func newTestProduct(name string, stocks ...entity.ProductStock) *entity.Product {
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    name,
		SubName: name + " sub",
		Images: []entity.Image{
			{ID: uuid.New(), ImageURL: "https://img.example.com/" + name + "-detail.png"},
			{ID: uuid.New(), ImageURL: "https://img.example.com/" + name + ".png", IsMain: true},
		},
		Stocks: stocks,
	}
	for i := range product.Stocks {
		product.Stocks[i].ProductID = product.ID
	}

	return product
}

func newTestStock(size, price string, stock int) entity.ProductStock {
	return entity.ProductStock{
		ID:    uuid.New(),
		Size:  size,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func TestCatalogService_ListProducts_CategoryMatch(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	multi := &entity.Category{ID: uuid.New(), Name: "Multivitamins", Description: "Daily basics"}
	single := &entity.Category{ID: uuid.New(), Name: "Vitamin C"}

	inStock := newTestProduct("daily", newTestStock("30", "12.5", 3), newTestStock("60", "20", 0))
	inStock.CategoryID = multi.ID
	inStock.Goals = []entity.Goal{{ID: uuid.New(), Name: "Immunity"}}
	soldOut := newTestProduct("empty", newTestStock("30", "9.99", 0))
	soldOut.CategoryID = multi.ID

	fx.catalogRepo.EXPECT().
		FindCategoriesByName(ctx, "vitamin").
		Return([]*entity.Category{multi, single}, nil)
	fx.productRepo.EXPECT().
		FindProductsByCategoryIDs(ctx, []uuid.UUID{multi.ID, single.ID}).
		Return([]*entity.Product{inStock, soldOut}, nil)

	listing, err := fx.service.ListProducts(ctx, "vitamin")
	require.NoError(t, err)
	assert.Equal(t, constants.ListingByCategory, listing.Strategy)
	require.Len(t, listing.Categories, 2)

	group := listing.Categories[0]
	assert.Equal(t, multi.ID, group.ID)
	assert.Equal(t, "Multivitamins", group.Subcategory.Title)
	assert.Equal(t, "Daily basics", group.Subcategory.Description)
	require.Len(t, group.Item, 2)

	summary := group.Item[0]
	assert.Equal(t, "daily", summary.DisplayTitle)
	assert.Equal(t, "https://img.example.com/daily.png", summary.ImageURL)
	assert.Equal(t, []string{"12.50", "20.00"}, summary.DisplayPrice)
	assert.Equal(t, []string{"30", "60"}, summary.DisplaySize)
	assert.Equal(t, []string{"Immunity"}, summary.SymbolURL)
	assert.False(t, summary.IsSoldout)
	assert.True(t, group.Item[1].IsSoldout)

	assert.Equal(t, single.ID, listing.Categories[1].ID)
	assert.NotNil(t, listing.Categories[1].Item)
	assert.Empty(t, listing.Categories[1].Item)
}

func TestCatalogService_ListProducts_GoalMatch(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	protein := &entity.Goal{ID: uuid.New(), Name: "Protein"}
	shake := newTestProduct("shake", newTestStock("500g", "30", 4))

	fx.catalogRepo.EXPECT().FindCategoriesByName(ctx, "protein").Return([]*entity.Category{}, nil)
	fx.catalogRepo.EXPECT().FindGoalsByName(ctx, "protein").Return([]*entity.Goal{protein}, nil)
	fx.productRepo.EXPECT().
		FindProductsByGoalIDs(ctx, []uuid.UUID{protein.ID}).
		Return([]*entity.Product{shake, shake}, nil)

	listing, err := fx.service.ListProducts(ctx, "protein")
	require.NoError(t, err)
	assert.Equal(t, constants.ListingByGoal, listing.Strategy)
	require.Len(t, listing.Products, 1)
	assert.Equal(t, shake.ID, listing.Products[0].ID)
	assert.Equal(t, listing.Products, listing.Payload())
}

func TestCatalogService_ListProducts_NewArrivals(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	fresh := newTestProduct("fresh", newTestStock("30", "10", 1))
	fresh.IsNew = true

	fx.catalogRepo.EXPECT().FindCategoriesByName(ctx, "new").Return(nil, nil)
	fx.catalogRepo.EXPECT().FindGoalsByName(ctx, "new").Return(nil, nil)
	fx.productRepo.EXPECT().FindProductsByNewFlag(ctx, true).Return([]*entity.Product{fresh}, nil)

	listing, err := fx.service.ListProducts(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, constants.ListingByNewFlag, listing.Strategy)
	require.Len(t, listing.Products, 1)
	assert.True(t, listing.Products[0].IsNew)
}

func TestCatalogService_ListProducts_EmptyTokenSkipsGoals(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindCategoriesByName(ctx, "").Return(nil, nil)
	fx.productRepo.EXPECT().FindProductsByNewFlag(ctx, false).Return([]*entity.Product{}, nil)

	listing, err := fx.service.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, constants.ListingByNewFlag, listing.Strategy)
	assert.Equal(t, []usecase.ProductSummary{}, listing.Payload())
}

func TestCatalogService_ListProducts_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cachedID := uuid.New()

	fx.cache.EXPECT().
		Get(ctx, "products:sort=protein", mock.AnythingOfType("*usecase.ProductListing")).
		RunAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			listing := dest.(*usecase.ProductListing)
			listing.Strategy = constants.ListingByGoal
			listing.Products = []usecase.ProductSummary{{ID: cachedID}}

			return true, nil
		})

	listing, err := fx.service.ListProducts(ctx, "protein")
	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	assert.Equal(t, cachedID, listing.Products[0].ID)
}

func TestCatalogService_ListProducts_CacheFailureFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cacheErr := errors.New("connection refused")

	fx.cache.EXPECT().Get(ctx, "products:sort=", mock.Anything).Return(false, cacheErr)
	fx.cache.EXPECT().Set(ctx, "products:sort=", mock.Anything, mock.Anything).Return(cacheErr)
	fx.catalogRepo.EXPECT().FindCategoriesByName(ctx, "").Return(nil, nil)
	fx.productRepo.EXPECT().FindProductsByNewFlag(ctx, false).Return([]*entity.Product{}, nil)

	listing, err := fx.service.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, listing)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	dbErr := errors.New("db down")

	fx.catalogRepo.EXPECT().FindCategoriesByName(ctx, "x").Return(nil, dbErr)

	listing, err := fx.service.ListProducts(ctx, "x")
	require.Error(t, err)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogService_GetProductDetail_ScalarPricing(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	immunity := entity.Goal{ID: uuid.New(), Name: "Immunity"}

	product := newTestProduct("vit-c", newTestStock("60", "15", 0), newTestStock("120", "25", 9))
	product.Category = &entity.Category{Name: "Vitamin C", Menu: &entity.Menu{Name: "vitamins"}}
	product.VeganLevel = entity.VeganLevelVegan
	product.NutritionURL = "https://nutrition.example.com/vit-c"
	product.Goals = []entity.Goal{immunity}
	product.Allergies = []entity.Allergy{{ID: uuid.New(), Name: "Soy"}}

	first := newTestProduct("zinc")
	first.Goals = []entity.Goal{immunity}
	second := newTestProduct("elderberry")
	third := newTestProduct("echinacea")

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		FindSimilarProducts(ctx, product.ID, []uuid.UUID{immunity.ID}, 2).
		Return([]*entity.Product{product, first, first, second, third}, nil)

	detail, err := fx.service.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "vitamins", detail.Category)
	assert.Equal(t, "https://img.example.com/vit-c.png", detail.ProductCardImageSrc)
	assert.Equal(t, "https://img.example.com/vit-c-detail.png", detail.ProductImageSrc)
	assert.True(t, detail.IsVegan)
	assert.False(t, detail.IsVegetarian)
	assert.Equal(t, []string{"Immunity"}, detail.HealthGoalList)
	assert.Equal(t, []string{"Soy"}, detail.AllergyList)
	assert.Equal(t, []string{}, detail.DietaryHabitList)
	assert.Equal(t, "https://nutrition.example.com/vit-c", detail.NutritionLink)
	assert.Equal(t, "15.00", detail.ProductPrice)
	assert.Equal(t, true, detail.IsSoldOut)

	require.Len(t, detail.SimilarProduct, 2)
	assert.Equal(t, first.ID, detail.SimilarProduct[0].ID)
	assert.Equal(t, []string{"Immunity"}, detail.SimilarProduct[0].HealthGoalList)
	assert.Equal(t, second.ID, detail.SimilarProduct[1].ID)
}

func TestCatalogService_GetProductDetail_SizePricing(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	product := newTestProduct("whey", newTestStock("500g", "30", 2), newTestStock("1kg", "55.5", 0))
	product.Category = &entity.Category{Name: "Whey", Menu: &entity.Menu{Name: "protein"}}
	product.VeganLevel = entity.VeganLevelVegetarian

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		FindSimilarProducts(ctx, product.ID, []uuid.UUID{}, 2).
		Return([]*entity.Product{}, nil)

	detail, err := fx.service.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsVegan)
	assert.True(t, detail.IsVegetarian)
	assert.Equal(t, map[string]string{"500g": "30.00", "1kg": "55.50"}, detail.ProductPrice)
	assert.Equal(t, map[string]bool{"500g": false, "1kg": true}, detail.IsSoldOut)
	assert.Empty(t, detail.SimilarProduct)
}

func TestCatalogService_GetProductDetail_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.expectCacheMiss()

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	detail, err := fx.service.GetProductDetail(ctx, productID)
	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
}

func TestCatalogService_GetProductQRCode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.productRepo.EXPECT().ProductExists(ctx, productID).Return(true, nil)
	fx.qrService.EXPECT().GenerateProductQR(productID).Return(png, nil)

	got, err := fx.service.GetProductQRCode(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCatalogService_GetProductQRCode_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().ProductExists(ctx, productID).Return(false, nil)

	got, err := fx.service.GetProductQRCode(ctx, productID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrDoesNotExist)
}
