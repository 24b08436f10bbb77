package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "cropsat/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log and return a generic envelope
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}
