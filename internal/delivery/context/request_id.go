package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	keyRequestID ContextKey = "request_id"
	keyLogger    ContextKey = "logger"

	// HeaderXRequestID is the HTTP header carrying the request ID. The API
	// sets it on responses and the worker echoes it from push deliveries so
	// a submission and its fetch job share one trace ID in the logs.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating a
// fresh UUID when the middleware has not set one.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(keyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from a standard
// context.Context, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to
// the provided logger when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
