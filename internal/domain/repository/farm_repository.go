package repository

import (
	"context"

	"cropsat/internal/domain/entity"
	"cropsat/internal/errors"

	"github.com/google/uuid"
)

// ErrFarmNotFound is returned when a farm is not found.
var ErrFarmNotFound = errors.New("farm not found")

// FarmRepository defines the interface for farm-related database operations.
type FarmRepository interface {
	// CreateFarm persists a new farm for an owner.
	CreateFarm(ctx context.Context, farm *entity.Farm) error

	// FindFarmByID retrieves a farm by its unique ID regardless of owner.
	// The caller is responsible for the ownership check so that a missing
	// farm and a foreign farm surface as distinct errors.
	FindFarmByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// FindFarmsByOwner retrieves all farms belonging to an owner.
	FindFarmsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error)
}
