// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"math"
	"time"

	deliverycontext "cropsat/internal/delivery/context"
	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/domain/service"
	"cropsat/internal/errors"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
)

type ingestionService struct {
	coordinateRepo repository.CoordinateRepository
	farmRepo       repository.FarmRepository
	jobPublisher   service.JobPublisher
}

// NewIngestionService creates a new ingestion service instance
func NewIngestionService(
	coordinateRepo repository.CoordinateRepository,
	farmRepo repository.FarmRepository,
	jobPublisher service.JobPublisher,
) usecase.IngestionUsecase {
	return &ingestionService{
		coordinateRepo: coordinateRepo,
		farmRepo:       farmRepo,
		jobPublisher:   jobPublisher,
	}
}

// SubmitCoordinate admits one coordinate submission into the pipeline.
func (s *ingestionService) SubmitCoordinate(ctx context.Context, ownerID, farmID uuid.UUID, input *usecase.SubmitCoordinateInput) (*entity.Coordinate, error) {
	if err := validateSubmission(input.ClientEventID, input.Lat, input.Lng); err != nil {
		return nil, err
	}

	if err := s.checkFarmOwnership(ctx, ownerID, farmID); err != nil {
		return nil, err
	}

	coordinate, _, err := s.admit(ctx, farmID, input.ClientEventID, input.Lat, input.Lng, input.Accuracy)
	if err != nil {
		return nil, err
	}

	return coordinate, nil
}

// SyncOfflineEvents applies submission logic per event. Partial success is
// the contract: every input yields exactly one tagged result and no error
// escapes the batch.
func (s *ingestionService) SyncOfflineEvents(ctx context.Context, ownerID uuid.UUID, events []usecase.SyncEventInput) []usecase.SyncEventResult {
	results := make([]usecase.SyncEventResult, 0, len(events))

	for _, event := range events {
		result := usecase.SyncEventResult{ClientEventID: event.ClientEventID}

		if err := validateSubmission(event.ClientEventID, event.Lat, event.Lng); err != nil {
			result.Status = usecase.SyncResultError
			result.Error = err.Error()
			results = append(results, result)

			continue
		}

		if err := s.checkFarmOwnership(ctx, ownerID, event.FarmID); err != nil {
			result.Status = usecase.SyncResultError
			result.Error = err.Error()
			results = append(results, result)

			continue
		}

		coordinate, created, err := s.admit(ctx, event.FarmID, event.ClientEventID, event.Lat, event.Lng, event.Accuracy)
		if err != nil {
			result.Status = usecase.SyncResultError
			result.Error = err.Error()
			results = append(results, result)

			continue
		}

		result.Coordinate = coordinate
		if created {
			result.Status = usecase.SyncResultCreated
		} else {
			result.Status = usecase.SyncResultExists
		}
		results = append(results, result)
	}

	return results
}

// GetCoordinateStatus returns the coordinate with its linked image.
func (s *ingestionService) GetCoordinateStatus(ctx context.Context, ownerID, coordinateID uuid.UUID) (*usecase.CoordinateStatusResult, error) {
	coordinate, image, err := s.coordinateRepo.FindCoordinateWithImage(ctx, coordinateID)
	if err != nil {
		if errors.Is(err, repository.ErrCoordinateNotFound) {
			return nil, domainerrors.ErrCoordinateNotFound
		}

		return nil, errors.Wrap(err, "failed to find coordinate")
	}

	if err := s.checkFarmOwnership(ctx, ownerID, coordinate.FarmID); err != nil {
		return nil, err
	}

	return &usecase.CoordinateStatusResult{
		Coordinate: coordinate,
		Image:      image,
	}, nil
}

// admit performs the idempotent create-and-enqueue. The coordinate row is
// durably visible in queued status before the job is published, so a
// worker picking up the job immediately never observes a missing row.
// If the publish fails the row is left queued with no in-flight job; a
// reconciliation sweep repairs that, not this service.
func (s *ingestionService) admit(ctx context.Context, farmID uuid.UUID, clientEventID string, lat, lng float64, accuracy *float64) (coordinate *entity.Coordinate, created bool, err error) {
	existing, err := s.coordinateRepo.FindByFarmAndClientEventID(ctx, farmID, clientEventID)
	if err == nil {
		// Repeated submission: return the existing row unchanged, no new job.
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrCoordinateNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up idempotency key")
	}

	now := time.Now()
	coordinate = &entity.Coordinate{
		ID:            uuid.New(),
		FarmID:        farmID,
		ClientEventID: clientEventID,
		Lat:           lat,
		Lng:           lng,
		Accuracy:      accuracy,
		Status:        entity.StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.coordinateRepo.CreateCoordinate(ctx, coordinate); err != nil {
		if errors.Is(err, repository.ErrDuplicateCoordinate) {
			// Lost a race with a concurrent submission of the same pair;
			// the winner already enqueued the job.
			existing, findErr := s.coordinateRepo.FindByFarmAndClientEventID(ctx, farmID, clientEventID)
			if findErr != nil {
				return nil, false, errors.Wrap(findErr, "failed to resolve duplicate coordinate")
			}

			return existing, false, nil
		}

		return nil, false, domainerrors.ErrCoordinateCreationFailed.WrapMessage(err.Error())
	}

	job := &service.FetchJob{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		CoordinateID: coordinate.ID.String(),
		FarmID:       farmID.String(),
		Lat:          lat,
		Lng:          lng,
	}

	if err := s.jobPublisher.PublishFetchJob(ctx, job); err != nil {
		return nil, false, domainerrors.ErrJobEnqueueFailed.WithDetails(err.Error())
	}

	return coordinate, true, nil
}

// checkFarmOwnership distinguishes a missing farm from a foreign one.
func (s *ingestionService) checkFarmOwnership(ctx context.Context, ownerID, farmID uuid.UUID) error {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return domainerrors.ErrFarmNotFound
		}

		return errors.Wrap(err, "failed to find farm")
	}

	if farm.OwnerID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// validateSubmission rejects missing keys and non-finite degrees.
// Out-of-range degrees and non-positive accuracy pass through unchanged;
// range clamping is deliberately not applied.
func validateSubmission(clientEventID string, lat, lng float64) error {
	if clientEventID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("client_event_id is required")
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return domainerrors.ErrValidationFailed.WithDetails("lat must be a finite number")
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return domainerrors.ErrValidationFailed.WithDetails("lng must be a finite number")
	}

	return nil
}
