package main

import (
	"context"
	"log/slog"
	"os"

	"vitashop/config"
	"vitashop/internal/delivery"
	"vitashop/internal/delivery/api"
	"vitashop/internal/delivery/api/middleware"
	"vitashop/internal/delivery/api/router/handler"
	"vitashop/internal/domain/service"
	"vitashop/internal/infra/auth"
	"vitashop/internal/infra/cache"
	logs "vitashop/internal/infra/log"
	"vitashop/internal/infra/persistence/postgres"
	"vitashop/internal/infra/pubsub"
	"vitashop/internal/infra/qrcode"
	"vitashop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCatalogRepository,
			postgres.NewCartRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			cache.NewCatalogCache,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the product QR code service from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewCartHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
