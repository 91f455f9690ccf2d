package impl

import (
	"context"
	"log/slog"
	"strings"
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

// listingStrategy is one branch of the product listing filter chain.
// It reports matched=false to hand the token to the next strategy.
type listingStrategy interface {
	name() string
	list(ctx context.Context, token string) (listing *usecase.ProductListing, matched bool, err error)
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	catalogRepo  repository.CatalogRepository
	cache        service.CatalogCache
	qrService    service.QRCodeService
	strategies   []listingStrategy
	vitaminsMenu string
	similarLimit int
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	CatalogRepo repository.CatalogRepository
	Cache       service.CatalogCache
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		productRepo:  params.ProductRepo,
		catalogRepo:  params.CatalogRepo,
		cache:        params.Cache,
		qrService:    params.QRService,
		vitaminsMenu: "vitamins",
		similarLimit: 2,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Shop != nil {
		if params.Config.Shop.VitaminsMenu != "" {
			srv.vitaminsMenu = params.Config.Shop.VitaminsMenu
		}
		if params.Config.Shop.SimilarProductLimit > 0 {
			srv.similarLimit = params.Config.Shop.SimilarProductLimit
		}
	}
	if params.Config != nil && params.Config.Redis != nil {
		srv.cacheTTL = params.Config.Redis.TTL
	}

	srv.strategies = []listingStrategy{
		&categoryListing{catalogRepo: srv.catalogRepo, productRepo: srv.productRepo},
		&goalListing{catalogRepo: srv.catalogRepo, productRepo: srv.productRepo},
		&newFlagListing{productRepo: srv.productRepo},
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts runs the filter chain and returns the first matching listing.
func (srv *catalogService) ListProducts(ctx context.Context, sort string) (*usecase.ProductListing, error) {
	cacheKey := "products:sort=" + sort

	cached := &usecase.ProductListing{}
	if srv.readCache(ctx, cacheKey, cached) {
		return cached, nil
	}

	for _, strategy := range srv.strategies {
		listing, matched, err := strategy.list(ctx, sort)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list products by %s", strategy.name())
		}
		if !matched {
			continue
		}

		srv.log(ctx).Debug("Product listing matched",
			slog.String("strategy", strategy.name()),
			slog.String("sort", sort),
		)
		srv.writeCache(ctx, cacheKey, listing)

		return listing, nil
	}

	return &usecase.ProductListing{Strategy: constants.ListingByNewFlag, Products: []usecase.ProductSummary{}}, nil
}

// GetProductDetail assembles the product page payload.
func (srv *catalogService) GetProductDetail(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetail, error) {
	cacheKey := "product:" + productID.String()

	cached := &usecase.ProductDetail{}
	if srv.readCache(ctx, cacheKey, cached) {
		return cached, nil
	}

	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrDoesNotExist.WrapMessage("product not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	goalIDs := make([]uuid.UUID, 0, len(product.Goals))
	for _, goal := range product.Goals {
		goalIDs = append(goalIDs, goal.ID)
	}

	similar, err := srv.productRepo.FindSimilarProducts(ctx, product.ID, goalIDs, srv.similarLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similar products")
	}

	detail := &usecase.ProductDetail{
		Category:            product.MenuName(),
		ID:                  product.ID,
		ProductImageSrc:     product.DetailImageURL(),
		ProductCardImageSrc: product.MainImageURL(),
		IsVegan:             product.VeganLevel.IsVegan(),
		IsVegetarian:        product.VeganLevel.IsVegetarian(),
		HealthGoalList:      entity.GoalNames(product.Goals),
		Title:               product.Name,
		SubTitle:            product.SubName,
		Description:         product.Description,
		NutritionLink:       product.NutritionURL,
		AllergyList:         entity.AllergyNames(product.Allergies),
		DietaryHabitList:    entity.DietaryHabitNames(product.DietaryHabits),
		SimilarProduct:      toSimilarProducts(product.ID, similar, srv.similarLimit),
	}
	detail.ProductPrice, detail.IsSoldOut = srv.pricing(product)

	srv.writeCache(ctx, cacheKey, detail)

	return detail, nil
}

// GetProductQRCode renders a QR code linking to the product page.
func (srv *catalogService) GetProductQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	exists, err := srv.productRepo.ProductExists(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product")
	}
	if !exists {
		return nil, domainerrors.ErrDoesNotExist.WrapMessage("product not found")
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// pricing returns a scalar price and sold-out flag for the single-variant menu,
// and size-keyed maps for everything else.
func (srv *catalogService) pricing(product *entity.Product) (any, any) {
	if strings.EqualFold(product.MenuName(), srv.vitaminsMenu) {
		if len(product.Stocks) == 0 {
			return nil, true
		}
		first := product.Stocks[0]

		return util.FormatMoney(first.Price), first.IsSoldOut()
	}

	prices := make(map[string]string, len(product.Stocks))
	soldOut := make(map[string]bool, len(product.Stocks))
	for i := range product.Stocks {
		stock := &product.Stocks[i]
		prices[stock.Size] = util.FormatMoney(stock.Price)
		soldOut[stock.Size] = stock.IsSoldOut()
	}

	return prices, soldOut
}

func (srv *catalogService) readCache(ctx context.Context, key string, dest any) bool {
	found, err := srv.cache.Get(ctx, key, dest)
	if err != nil {
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return found
}

func (srv *catalogService) writeCache(ctx context.Context, key string, value any) {
	if err := srv.cache.Set(ctx, key, value, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// categoryListing matches categories by name and groups their products.
type categoryListing struct {
	catalogRepo repository.CatalogRepository
	productRepo repository.ProductRepository
}

func (s *categoryListing) name() string { return constants.ListingByCategory }

func (s *categoryListing) list(ctx context.Context, token string) (*usecase.ProductListing, bool, error) {
	categories, err := s.catalogRepo.FindCategoriesByName(ctx, token)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find categories")
	}
	if len(categories) == 0 {
		return nil, false, nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	products, err := s.productRepo.FindProductsByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find products by category")
	}

	byCategory := make(map[uuid.UUID][]usecase.ProductSummary, len(categories))
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], toProductSummary(product))
	}

	groups := make([]usecase.CategoryGroup, 0, len(categories))
	for _, category := range categories {
		items := byCategory[category.ID]
		if items == nil {
			items = []usecase.ProductSummary{}
		}
		groups = append(groups, usecase.CategoryGroup{
			ID: category.ID,
			Subcategory: usecase.Subcategory{
				Title:       category.Name,
				Description: category.Description,
			},
			Item: items,
		})
	}

	return &usecase.ProductListing{Strategy: constants.ListingByCategory, Categories: groups}, true, nil
}

// goalListing matches goals by name and lists the products tagged with them.
type goalListing struct {
	catalogRepo repository.CatalogRepository
	productRepo repository.ProductRepository
}

func (s *goalListing) name() string { return constants.ListingByGoal }

func (s *goalListing) list(ctx context.Context, token string) (*usecase.ProductListing, bool, error) {
	if strings.TrimSpace(token) == "" {
		return nil, false, nil
	}

	goals, err := s.catalogRepo.FindGoalsByName(ctx, token)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find goals")
	}
	if len(goals) == 0 {
		return nil, false, nil
	}

	goalIDs := make([]uuid.UUID, 0, len(goals))
	for _, goal := range goals {
		goalIDs = append(goalIDs, goal.ID)
	}

	products, err := s.productRepo.FindProductsByGoalIDs(ctx, goalIDs)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find products by goal")
	}

	return &usecase.ProductListing{Strategy: constants.ListingByGoal, Products: toProductSummaries(products)}, true, nil
}

// newFlagListing is the fallback: new arrivals for the "new" token, everything else otherwise.
type newFlagListing struct {
	productRepo repository.ProductRepository
}

func (s *newFlagListing) name() string { return constants.ListingByNewFlag }

func (s *newFlagListing) list(ctx context.Context, token string) (*usecase.ProductListing, bool, error) {
	products, err := s.productRepo.FindProductsByNewFlag(ctx, token == constants.NewArrivalsToken)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find products by new flag")
	}

	return &usecase.ProductListing{Strategy: constants.ListingByNewFlag, Products: toProductSummaries(products)}, true, nil
}

func toProductSummaries(products []*entity.Product) []usecase.ProductSummary {
	seen := make(map[uuid.UUID]struct{}, len(products))
	summaries := make([]usecase.ProductSummary, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}
		summaries = append(summaries, toProductSummary(product))
	}

	return summaries
}

func toProductSummary(product *entity.Product) usecase.ProductSummary {
	prices := make([]string, 0, len(product.Stocks))
	sizes := make([]string, 0, len(product.Stocks))
	for _, stock := range product.Stocks {
		prices = append(prices, util.FormatMoney(stock.Price))
		sizes = append(sizes, stock.Size)
	}

	return usecase.ProductSummary{
		ID:           product.ID,
		DisplayTitle: product.Name,
		SubTitle:     product.SubName,
		ImageURL:     product.MainImageURL(),
		SymbolURL:    entity.GoalNames(product.Goals),
		Description:  product.Description,
		DisplayPrice: prices,
		DisplaySize:  sizes,
		IsNew:        product.IsNew,
		IsSoldout:    product.IsSoldOut(),
	}
}

func toSimilarProducts(productID uuid.UUID, products []*entity.Product, limit int) []usecase.SimilarProduct {
	seen := map[uuid.UUID]struct{}{productID: {}}
	similar := make([]usecase.SimilarProduct, 0, limit)
	for _, product := range products {
		if len(similar) == limit {
			break
		}
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}

		similar = append(similar, usecase.SimilarProduct{
			ID:             product.ID,
			Title:          product.Name,
			SubTitle:       product.SubName,
			ImageURL:       product.MainImageURL(),
			HealthGoalList: entity.GoalNames(product.Goals),
		})
	}

	return similar
}
