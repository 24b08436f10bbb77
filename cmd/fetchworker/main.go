package main

import (
	"context"
	"log/slog"
	"os"

	"cropsat/config"
	"cropsat/internal/delivery"
	"cropsat/internal/delivery/worker"
	"cropsat/internal/delivery/worker/handler"
	logs "cropsat/internal/infra/log"
	"cropsat/internal/infra/persistence/postgres"
	"cropsat/internal/infra/sentinel"
	"cropsat/internal/infra/storage"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewCoordinateRepository,
			postgres.NewImageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sentinel.NewClient,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAcquisitionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFetchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
