package postgres

import (
	"context"

	"vitashop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uuidExtensionDDL provides uuid_generate_v7(), the default for every primary key.
const uuidExtensionDDL = `CREATE EXTENSION IF NOT EXISTS pg_uuidv7`

// Migrate brings the schema up to date with the persistence models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.Exec(uuidExtensionDDL).Error; err != nil {
		return errors.Wrap(err, "failed to enable pg_uuidv7")
	}

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate models")
	}

	return nil
}
