// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitashop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductStockNotFound is returned when no variant matches the lookup.
	ErrProductStockNotFound = errors.New("product stock not found")
)

// ProductRepository defines the interface for product and variant reads.
type ProductRepository interface {
	// FindProductByID retrieves a product with its category, menu, tags, images and variants.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ProductExists reports whether a product with the given ID exists.
	ProductExists(ctx context.Context, id uuid.UUID) (bool, error)

	// FindProductsByCategoryIDs retrieves the products listed under any of the given categories.
	FindProductsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Product, error)

	// FindProductsByGoalIDs retrieves the distinct products tagged with any of the given goals.
	FindProductsByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.Product, error)

	// FindProductsByNewFlag retrieves the products whose is_new flag equals isNew.
	FindProductsByNewFlag(ctx context.Context, isNew bool) ([]*entity.Product, error)

	// FindSimilarProducts retrieves up to limit distinct products sharing any of the given goals,
	// excluding the product itself.
	FindSimilarProducts(ctx context.Context, productID uuid.UUID, goalIDs []uuid.UUID, limit int) ([]*entity.Product, error)

	// FindProductStockByID retrieves a variant by its unique ID.
	FindProductStockByID(ctx context.Context, id uuid.UUID) (*entity.ProductStock, error)

	// FindProductStock retrieves the variant of a product with the given size.
	FindProductStock(ctx context.Context, productID uuid.UUID, size string) (*entity.ProductStock, error)
}
