package main

import (
	"context"
	"log/slog"
	"os"

	"cropsat/config"
	"cropsat/internal/delivery"
	"cropsat/internal/delivery/http"
	"cropsat/internal/delivery/http/middleware"
	"cropsat/internal/delivery/http/router/handler"
	"cropsat/internal/infra/auth"
	logs "cropsat/internal/infra/log"
	"cropsat/internal/infra/persistence/postgres"
	"cropsat/internal/infra/pubsub"
	"cropsat/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFarmRepository,
			postgres.NewCoordinateRepository,
			postgres.NewImageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFarmService,
			impl.NewIngestionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFarmHandler,
			handler.NewCoordinateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
