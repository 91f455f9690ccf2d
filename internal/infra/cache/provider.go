package cache

import (
	"context"
	"log/slog"

	"vitashop/config"
	"vitashop/internal/domain/lifecycle"
	"vitashop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// CacheParams holds dependencies for CatalogCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache creates a Redis-backed CatalogCache, or a no-op one when Redis is not configured.
// An unreachable Redis is logged on start but does not stop the application.
func NewCatalogCache(params CacheParams) (service.CatalogCache, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.URL == "" {
		logger.Info("Redis not configured, catalog cache disabled")

		return noopCatalogCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed, catalog cache will miss until it recovers",
					slog.String("addr", opts.Addr),
					slog.Any("error", err),
				)

				return nil
			}

			logger.Info("Catalog cache connected", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCatalogCache(client, cfg.KeyPrefix), nil
}
