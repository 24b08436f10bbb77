// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"cropsat/internal/domain/entity"
	"cropsat/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coordinate persistence.
var (
	// ErrCoordinateNotFound is returned when a coordinate is not found.
	ErrCoordinateNotFound = errors.New("coordinate not found")
	// ErrDuplicateCoordinate is returned when the (farm, client event)
	// idempotency key already exists.
	ErrDuplicateCoordinate = errors.New("coordinate already exists for this client event")
)

// StatusUpdate carries the optional fields written together with a status
// transition. Each transition is a single atomic update keyed by id;
// concurrent redeliveries resolve last-writer-wins.
type StatusUpdate struct {
	FetchedImageID *uuid.UUID
	ProcessedAt    *time.Time
}

// CoordinateRepository defines the interface for coordinate-related database operations.
type CoordinateRepository interface {
	// CreateCoordinate persists a new coordinate in queued status.
	// Returns ErrDuplicateCoordinate when the (farmID, clientEventID)
	// unique key is violated.
	CreateCoordinate(ctx context.Context, coordinate *entity.Coordinate) error

	// FindCoordinateByID retrieves a coordinate by its unique ID.
	FindCoordinateByID(ctx context.Context, id uuid.UUID) (*entity.Coordinate, error)

	// FindCoordinateWithImage retrieves a coordinate together with its
	// linked image, if any. Used by the status read path.
	FindCoordinateWithImage(ctx context.Context, id uuid.UUID) (*entity.Coordinate, *entity.Image, error)

	// FindByFarmAndClientEventID looks up the idempotency key.
	// Returns ErrCoordinateNotFound when no submission exists for the pair.
	FindByFarmAndClientEventID(ctx context.Context, farmID uuid.UUID, clientEventID string) (*entity.Coordinate, error)

	// UpdateStatus atomically writes the coordinate status plus any extra
	// fields. It does not read-modify-write; redelivered jobs overwrite.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CoordinateStatus, update StatusUpdate) error
}
