package middleware

import (
	"log/slog"

	deliverycontext "cropsat/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request a request ID and a request-scoped
// logger. A client-supplied X-Request-Id is honoured so a submission, its
// published fetch job, and the worker delivery log under the same ID.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request ID, echoes it on the response, and threads
// it plus a child logger through context.Context for the service layer.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
