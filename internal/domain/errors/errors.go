// Package errors defines application-level error types shared between the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"cropsat/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors are user-correctable and never retried.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Ownership and lookup errors.
	ErrFarmNotFound = NewBaseError(
		http.StatusNotFound,
		"FARM_NOT_FOUND",
		"Farm not found",
		"",
	)

	ErrCoordinateNotFound = NewBaseError(
		http.StatusNotFound,
		"COORDINATE_NOT_FOUND",
		"Coordinate not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// ErrJobEnqueueFailed is returned when the coordinate row was written
	// but the fetch job could not be enqueued. The row stays queued with no
	// in-flight job until a reconciliation sweep repairs it.
	ErrJobEnqueueFailed = NewBaseError(
		http.StatusInternalServerError,
		"JOB_ENQUEUE_FAILED",
		"Failed to enqueue image fetch job",
		"",
	)

	ErrCoordinateCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"COORDINATE_CREATION_FAILED",
		"Failed to create coordinate",
		"",
	)

	ErrFarmCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"FARM_CREATION_FAILED",
		"Failed to create farm",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
