package repository

import (
	"context"

	"cropsat/internal/domain/entity"
	"cropsat/internal/errors"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when an image is not found.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines the interface for image metadata persistence.
// Images are created once by the acquisition worker and never mutated.
type ImageRepository interface {
	// CreateImage persists a new image record.
	CreateImage(ctx context.Context, image *entity.Image) error

	// FindImageByID retrieves an image by its unique ID.
	FindImageByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
}
