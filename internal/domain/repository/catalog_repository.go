package repository

import (
	"context"

	"vitashop/internal/domain/entity"
)

// CatalogRepository defines lookups over the catalog's grouping tables.
type CatalogRepository interface {
	// FindCategoriesByName retrieves categories whose name contains token, ignoring case.
	// An empty token matches every category.
	FindCategoriesByName(ctx context.Context, token string) ([]*entity.Category, error)

	// FindGoalsByName retrieves goals whose name contains token, ignoring case.
	FindGoalsByName(ctx context.Context, token string) ([]*entity.Goal, error)
}
