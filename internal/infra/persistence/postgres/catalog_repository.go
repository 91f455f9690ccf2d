package postgres

import (
	"context"
	"strings"

	"vitashop/internal/domain/entity"
	"vitashop/internal/domain/repository"
	"vitashop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so a token is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching values that contain token.
func containsPattern(token string) string {
	return "%" + likeEscaper.Replace(token) + "%"
}

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindCategoriesByName retrieves categories whose name contains token, ignoring case.
func (repo *catalogRepository) FindCategoriesByName(ctx context.Context, token string) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Preload("Menu").
		Where("name ILIKE ?", containsPattern(token)).
		Order("created_at ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by name")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindGoalsByName retrieves goals whose name contains token, ignoring case.
func (repo *catalogRepository) FindGoalsByName(ctx context.Context, token string) ([]*entity.Goal, error) {
	var goalModels []*model.GoalModel

	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(token)).
		Find(&goalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find goals by name")
	}

	goals := make([]*entity.Goal, 0, len(goalModels))
	for _, goalM := range goalModels {
		goals = append(goals, &entity.Goal{ID: goalM.ID, Name: goalM.Name})
	}

	return goals, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	category := &entity.Category{
		ID:          data.ID,
		MenuID:      data.MenuID,
		Name:        data.Name,
		Description: data.Description,
	}
	if data.Menu != nil {
		category.Menu = &entity.Menu{ID: data.Menu.ID, Name: data.Menu.Name}
	}

	return category
}
