// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vitashop/internal/domain/entity"
	"vitashop/internal/domain/repository"
	"vitashop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// orderByCreated keeps associations in insertion order so "first variant" is stable.
func orderByCreated(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// withListingAssociations preloads what a product card needs.
func withListingAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Goals").
		Preload("Images").
		Preload("Stocks", orderByCreated)
}

// FindProductByID retrieves a product with its category, menu, tags, images and variants.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category.Menu").
		Preload("Allergies").
		Preload("DietaryHabits").
		Scopes(withListingAssociations).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ProductExists reports whether a product with the given ID exists.
func (repo *productRepository) ProductExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product existence")
	}

	return count > 0, nil
}

// FindProductsByCategoryIDs retrieves the products listed under any of the given categories.
func (repo *productRepository) FindProductsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Product, error) {
	if len(categoryIDs) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Scopes(withListingAssociations).
		Where("category_id IN ?", categoryIDs).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by categories")
	}

	return toProductDomains(productModels), nil
}

// FindProductsByGoalIDs retrieves the distinct products tagged with any of the given goals.
func (repo *productRepository) FindProductsByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.Product, error) {
	if len(goalIDs) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Scopes(withListingAssociations).
		Where("id IN (?)", repo.taggedWith(ctx, goalIDs)).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by goals")
	}

	return toProductDomains(productModels), nil
}

// FindProductsByNewFlag retrieves the products whose is_new flag equals isNew.
func (repo *productRepository) FindProductsByNewFlag(ctx context.Context, isNew bool) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Scopes(withListingAssociations).
		Where("is_new = ?", isNew).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by new flag")
	}

	return toProductDomains(productModels), nil
}

// FindSimilarProducts retrieves up to limit distinct products sharing any of the given goals,
// excluding the product itself.
func (repo *productRepository) FindSimilarProducts(
	ctx context.Context,
	productID uuid.UUID,
	goalIDs []uuid.UUID,
	limit int,
) ([]*entity.Product, error) {
	if len(goalIDs) == 0 || limit <= 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Goals").
		Preload("Images").
		Where("id IN (?) AND id <> ?", repo.taggedWith(ctx, goalIDs), productID).
		Order("created_at ASC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find similar products")
	}

	return toProductDomains(productModels), nil
}

// taggedWith builds the subquery selecting product ids linked to any of the goals.
func (repo *productRepository) taggedWith(ctx context.Context, goalIDs []uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("product_goals").
		Select("product_id").
		Where("goal_id IN ?", goalIDs)
}

// FindProductStockByID retrieves a variant by its unique ID.
func (repo *productRepository) FindProductStockByID(ctx context.Context, id uuid.UUID) (*entity.ProductStock, error) {
	var stockM model.ProductStockModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find product stock by ID")
	}

	return toProductStockDomain(&stockM), nil
}

// FindProductStock retrieves the variant of a product with the given size.
func (repo *productRepository) FindProductStock(ctx context.Context, productID uuid.UUID, size string) (*entity.ProductStock, error) {
	var stockM model.ProductStockModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND size = ?", productID, size).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find product stock")
	}

	return toProductStockDomain(&stockM), nil
}

// --- Mapper Functions ---

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// toProductDomain converts a GORM ProductModel, including any loaded associations, to a domain Product.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		Category:      toCategoryDomain(data.Category),
		Name:          data.Name,
		SubName:       data.SubName,
		Description:   data.Description,
		NutritionURL:  data.NutritionURL,
		IsNew:         data.IsNew,
		VeganLevel:    entity.VeganLevel(data.VeganLevel),
		Goals:         make([]entity.Goal, 0, len(data.Goals)),
		Allergies:     make([]entity.Allergy, 0, len(data.Allergies)),
		DietaryHabits: make([]entity.DietaryHabit, 0, len(data.DietaryHabits)),
		Images:        make([]entity.Image, 0, len(data.Images)),
		Stocks:        make([]entity.ProductStock, 0, len(data.Stocks)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	for _, g := range data.Goals {
		product.Goals = append(product.Goals, entity.Goal{ID: g.ID, Name: g.Name})
	}
	for _, a := range data.Allergies {
		product.Allergies = append(product.Allergies, entity.Allergy{ID: a.ID, Name: a.Name})
	}
	for _, h := range data.DietaryHabits {
		product.DietaryHabits = append(product.DietaryHabits, entity.DietaryHabit{ID: h.ID, Name: h.Name})
	}
	for _, img := range data.Images {
		product.Images = append(product.Images, entity.Image{
			ID:        img.ID,
			ProductID: img.ProductID,
			ImageURL:  img.ImageURL,
			IsMain:    img.IsMain,
		})
	}
	for i := range data.Stocks {
		product.Stocks = append(product.Stocks, *toProductStockDomain(&data.Stocks[i]))
	}

	return product
}

// toProductStockDomain converts a GORM ProductStockModel to a domain ProductStock.
func toProductStockDomain(data *model.ProductStockModel) *entity.ProductStock {
	if data == nil {
		return nil
	}

	return &entity.ProductStock{
		ID:        data.ID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Size:      data.Size,
		Price:     data.Price,
		Stock:     data.Stock,
	}
}
