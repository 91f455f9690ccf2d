package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vitashop/config"
	deliverycontext "vitashop/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog, preferring the request-scoped
// logger so SQL lines carry the request ID.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}

	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Env.Log.SlowQuery > 0 {
			l.slowThreshold = cfg.Env.Log.SlowQuery
		}
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// Missing rows are an expected outcome of First and are not treated as failures.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			// The client went away; nothing is wrong with the database.
			level = slog.LevelWarn
		}
		l.trace(ctx, level, "GORM query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed, slog.Duration("slowThreshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelInfo, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) trace(
	ctx context.Context,
	level slog.Level,
	msg string,
	sqlAndRowsFn func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
