package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cropsat/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const gormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM's logger.Interface onto the application slog
// logger. Record-not-found is an expected outcome for coordinate and farm
// lookups, so it is never reported as a query error.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{logger: baseLogger, level: level}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, min logger.LogLevel, level slog.Level, title string, msg string, args ...any) {
	if l.level < min || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, title,
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case elapsed > gormSlowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", gormSlowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
