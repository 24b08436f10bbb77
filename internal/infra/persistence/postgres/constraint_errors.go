package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The unique index path also surfaces as a raw pgconn error when the
	// translated-error option is off, so match the SQLSTATE as well.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
