// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// coordinateRepository implements the domain.CoordinateRepository interface.
type coordinateRepository struct {
	db *gorm.DB
}

// NewCoordinateRepository is the constructor for coordinateRepository.
func NewCoordinateRepository(db *gorm.DB) repository.CoordinateRepository {
	return &coordinateRepository{db: db}
}

// CreateCoordinate persists a new coordinate in queued status.
func (repo *coordinateRepository) CreateCoordinate(ctx context.Context, coordinate *entity.Coordinate) error {
	coordinateM := fromCoordinateDomain(coordinate)

	if err := repo.db.WithContext(ctx).Create(coordinateM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoordinate
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCoordinateCreationFailed.WrapMessage("invalid farm reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCoordinateCreationFailed.WrapMessage("missing required coordinate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coordinate")
	}

	// Update the entity with generated values
	coordinate.ID = coordinateM.ID
	coordinate.CreatedAt = coordinateM.CreatedAt
	coordinate.UpdatedAt = coordinateM.UpdatedAt

	return nil
}

// FindCoordinateByID retrieves a coordinate by its unique ID.
func (repo *coordinateRepository) FindCoordinateByID(ctx context.Context, id uuid.UUID) (*entity.Coordinate, error) {
	var coordinateM model.CoordinateModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&coordinateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoordinateNotFound
		}

		return nil, errors.Wrap(err, "failed to find coordinate by ID")
	}

	return toCoordinateDomain(&coordinateM), nil
}

// FindCoordinateWithImage retrieves a coordinate together with its linked image.
// The image lookup is best effort only in the sense that a coordinate
// without a link returns a nil image, not an error.
func (repo *coordinateRepository) FindCoordinateWithImage(ctx context.Context, id uuid.UUID) (*entity.Coordinate, *entity.Image, error) {
	coordinate, err := repo.FindCoordinateByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if coordinate.FetchedImageID == nil {
		return coordinate, nil, nil
	}

	var imageM model.ImageModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", *coordinate.FetchedImageID).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling link; surface the coordinate anyway.
			return coordinate, nil, nil
		}

		return nil, nil, errors.Wrap(err, "failed to find linked image")
	}

	return coordinate, toImageDomain(&imageM), nil
}

// FindByFarmAndClientEventID looks up the idempotency key.
func (repo *coordinateRepository) FindByFarmAndClientEventID(ctx context.Context, farmID uuid.UUID, clientEventID string) (*entity.Coordinate, error) {
	var coordinateM model.CoordinateModel
	if err := repo.db.WithContext(ctx).
		Where("farm_id = ? AND client_event_id = ?", farmID, clientEventID).
		First(&coordinateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoordinateNotFound
		}

		return nil, errors.Wrap(err, "failed to find coordinate by client event")
	}

	return toCoordinateDomain(&coordinateM), nil
}

// UpdateStatus atomically writes the coordinate status plus any extra fields.
func (repo *coordinateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CoordinateStatus, update repository.StatusUpdate) error {
	values := map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if update.FetchedImageID != nil {
		values["fetched_image_id"] = *update.FetchedImageID
	}
	if update.ProcessedAt != nil {
		values["processed_at"] = *update.ProcessedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CoordinateModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coordinate status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoordinateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCoordinateDomain converts a GORM CoordinateModel to a domain Coordinate entity.
func toCoordinateDomain(data *model.CoordinateModel) *entity.Coordinate {
	if data == nil {
		return nil
	}

	return &entity.Coordinate{
		ID:             data.ID,
		FarmID:         data.FarmID,
		ClientEventID:  data.ClientEventID,
		Lat:            data.Lat,
		Lng:            data.Lng,
		Accuracy:       data.Accuracy,
		Status:         entity.CoordinateStatus(data.Status),
		FetchedImageID: data.FetchedImageID,
		ProcessedAt:    data.ProcessedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCoordinateDomain converts a domain Coordinate entity to a GORM CoordinateModel.
func fromCoordinateDomain(data *entity.Coordinate) *model.CoordinateModel {
	if data == nil {
		return nil
	}

	return &model.CoordinateModel{
		ID:             data.ID,
		FarmID:         data.FarmID,
		ClientEventID:  data.ClientEventID,
		Lat:            data.Lat,
		Lng:            data.Lng,
		Accuracy:       data.Accuracy,
		Status:         string(data.Status),
		FetchedImageID: data.FetchedImageID,
		ProcessedAt:    data.ProcessedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
