package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vitashop/config"
	logs "vitashop/internal/infra/log"
	"vitashop/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// openDatabase loads the shared config and connects to the primary database.
// The returned close func releases the connection pool.
func openDatabase() (*config.Config, *slog.Logger, *gorm.DB, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}

	return cfg, logger, db, closeFn, nil
}

func runMigrate(ctx context.Context) error {
	_, _, db, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	startTime := time.Now()
	fmt.Println("Migrating shop schema...")

	if err := postgres.Migrate(ctx, db); err != nil {
		return errors.Wrap(err, "migration failed")
	}

	fmt.Printf("✅ Schema up to date in %v\n", time.Since(startTime).Round(time.Millisecond))

	return nil
}
