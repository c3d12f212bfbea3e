package main

import (
	"context"
	"log/slog"
	"os"

	"cellcontrol/config"
	"cellcontrol/internal/delivery"
	"cellcontrol/internal/delivery/api"
	"cellcontrol/internal/delivery/api/middleware"
	"cellcontrol/internal/delivery/api/router/handler"
	"cellcontrol/internal/infra/assets"
	"cellcontrol/internal/infra/auth"
	logs "cellcontrol/internal/infra/log"
	"cellcontrol/internal/infra/metrics"
	"cellcontrol/internal/infra/persistence/postgres"
	"cellcontrol/internal/infra/pubsub"
	"cellcontrol/internal/infra/qrcode"
	"cellcontrol/internal/infra/ratelimit"
	"cellcontrol/internal/usecase"
	"cellcontrol/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			postgres.RegisterMigration,
			registerBootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTenantRepository,
			postgres.NewUserRepository,
			postgres.NewDeviceModelRepository,
			postgres.NewProductRepository,
			postgres.NewCustomerRepository,
			postgres.NewSaleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ratelimit.New,
			pubsub.NewEventPublisher,
			assets.New,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccessService,
			impl.NewModelService,
			impl.NewProductService,
			impl.NewCustomerService,
			impl.NewSaleService,
			impl.NewDashboardService,
			impl.NewAdminService,
			impl.NewImportService,
			impl.NewBootstrapService,
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
			handler.NewAuthHandler,
			handler.NewModelHandler,
			handler.NewProductHandler,
			handler.NewCustomerHandler,
			handler.NewSaleHandler,
			handler.NewDashboardHandler,
			handler.NewAdminHandler,
			handler.NewImportHandler,
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

// registerBootstrap seeds the first accounts once the schema is in place.
func registerBootstrap(lc fx.Lifecycle, bootstrap usecase.BootstrapUsecase) {
	lc.Append(fx.Hook{
		OnStart: bootstrap.Seed,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
