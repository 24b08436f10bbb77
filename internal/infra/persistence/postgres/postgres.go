package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"cropsat/config"
	"cropsat/internal/domain/lifecycle"
	"cropsat/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client shared by the API and the fetch worker.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Skip GORM's per-statement implicit transaction. The image row and
		// the fetched status link commit together via txManager.Execute;
		// everything else is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool reports connection pool contention. Worker deliveries and
// API submissions share one pool, so sustained waits here usually mean the
// pool is sized below the push subscription's concurrency.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(dbPoolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			prev = logPoolWait(ctx, logger, prev, cur)
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) sql.DBStats {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return cur
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	msg := "Postgres pool wait observed"
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
		msg = "Postgres pool wait detected"
	}
	logger.LogAttrs(ctx, level, msg, attrs...)

	return cur
}
