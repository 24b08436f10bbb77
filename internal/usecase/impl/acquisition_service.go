package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cropsat/config"
	deliverycontext "cropsat/internal/delivery/context"
	"cropsat/internal/domain/entity"
	"cropsat/internal/domain/repository"
	"cropsat/internal/domain/service"
	"cropsat/internal/errors"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
)

type acquisitionService struct {
	logger         *slog.Logger
	coordinateRepo repository.CoordinateRepository
	txManager      repository.TransactionManager
	imagery        service.ImageryProvider
	storage        service.ObjectStorage

	keyPrefix        string
	lookbackDays     int
	maxCloudCoverage int
}

// NewAcquisitionService creates the pipeline engine that turns a fetch
// job into a stored image and a terminal coordinate status.
func NewAcquisitionService(
	cfg *config.Config,
	logger *slog.Logger,
	coordinateRepo repository.CoordinateRepository,
	txManager repository.TransactionManager,
	imagery service.ImageryProvider,
	storage service.ObjectStorage,
) usecase.AcquisitionUsecase {
	return &acquisitionService{
		logger:           logger,
		coordinateRepo:   coordinateRepo,
		txManager:        txManager,
		imagery:          imagery,
		storage:          storage,
		keyPrefix:        cfg.Storage.KeyPrefix,
		lookbackDays:     cfg.Sentinel.LookbackDays,
		maxCloudCoverage: cfg.Sentinel.MaxCloudCoverage,
	}
}

// HandleFetchJob runs the acquisition pipeline for one job delivery.
//
// The pipeline is deliberately resumable: a delivery without an image link
// starts over from the fetching transition (the blob key carries a
// per-attempt suffix so re-runs never collide), and one with a link only
// finishes the remaining status work. The image link commits in the final
// transaction, so a crash mid-pipeline leaves at worst an orphaned blob,
// never a half-linked record.
func (s *acquisitionService) HandleFetchJob(ctx context.Context, job *service.FetchJob) (*usecase.AcquisitionResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	coordinateID, err := uuid.Parse(job.CoordinateID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid coordinate id in job")
	}

	coordinate, err := s.coordinateRepo.FindCoordinateByID(ctx, coordinateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load coordinate for job")
	}

	// Duplicate delivery after the image link committed: the fetch itself
	// is done, so never re-fetch. But a crash between the fetched link and
	// the processed write leaves the coordinate stranded in fetched; this
	// redelivery is the only chance to finish that transition.
	if coordinate.FetchedImageID != nil {
		imageID := *coordinate.FetchedImageID

		if coordinate.Status != entity.StatusProcessed {
			logger.Info("[Acquisition] Resuming job after fetched link",
				slog.String("coordinate_id", coordinate.ID.String()),
				slog.String("image_id", imageID.String()),
			)

			if err := s.markProcessed(ctx, logger, coordinate.ID, imageID); err != nil {
				return nil, err
			}
		} else {
			logger.Info("[Acquisition] Job already completed, skipping",
				slog.String("coordinate_id", coordinate.ID.String()),
				slog.String("image_id", imageID.String()),
			)
		}

		return &usecase.AcquisitionResult{ImageID: imageID}, nil
	}

	if err := s.coordinateRepo.UpdateStatus(ctx, coordinate.ID, entity.StatusFetching, repository.StatusUpdate{}); err != nil {
		return nil, errors.Wrap(err, "failed to mark coordinate fetching")
	}

	imageID, err := s.fetchAndPersist(ctx, logger, coordinate, job)
	if err != nil {
		s.markFailed(ctx, logger, coordinate.ID, err)

		return nil, err
	}

	if err := s.markProcessed(ctx, logger, coordinate.ID, imageID); err != nil {
		return nil, err
	}

	return &usecase.AcquisitionResult{ImageID: imageID}, nil
}

// markProcessed records the terminal processed status. It is safe to call
// again on a redelivered job whose image link already committed.
func (s *acquisitionService) markProcessed(ctx context.Context, logger *slog.Logger, coordinateID uuid.UUID, imageID uuid.UUID) error {
	processedAt := time.Now()
	if err := s.coordinateRepo.UpdateStatus(ctx, coordinateID, entity.StatusProcessed, repository.StatusUpdate{
		ProcessedAt: &processedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to mark coordinate processed")
	}

	logger.Info("[Acquisition] Job completed",
		slog.String("coordinate_id", coordinateID.String()),
		slog.String("image_id", imageID.String()),
	)

	return nil
}

// fetchAndPersist performs the external calls and the final atomic write:
// token, imagery fetch, blob upload, then image row + fetched status in
// one transaction.
func (s *acquisitionService) fetchAndPersist(ctx context.Context, logger *slog.Logger, coordinate *entity.Coordinate, job *service.FetchJob) (uuid.UUID, error) {
	token, err := s.imagery.GetToken(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	bbox := entity.BoundingBoxAround(job.Lat, job.Lng)
	now := time.Now()
	data, err := s.imagery.FetchImage(ctx, token, service.ImageRequest{
		BBox:             bbox,
		From:             now.AddDate(0, 0, -s.lookbackDays),
		To:               now,
		MaxCloudCoverage: s.maxCloudCoverage,
	})
	if err != nil {
		return uuid.Nil, err
	}

	logger.Info("[Acquisition] Imagery fetched",
		slog.String("coordinate_id", coordinate.ID.String()),
		slog.Int("bytes", len(data)),
	)

	key := fmt.Sprintf("%s/farm-%s/%s-%d.tiff", s.keyPrefix, job.FarmID, coordinate.ID.String(), now.UnixMilli())
	stored, err := s.storage.Put(ctx, key, data, "image/tiff")
	if err != nil {
		return uuid.Nil, err
	}

	image := &entity.Image{
		ID:   uuid.New(),
		Key:  stored.Key,
		BBox: bbox,
		Meta: entity.ImageMeta{
			UploadedAt: now,
			Size:       int64(len(data)),
			Location:   stored.Location,
		},
		CreatedAt: now,
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewImageRepository().CreateImage(ctx, image); err != nil {
			return errors.Wrap(err, "failed to create image record")
		}

		return txRepoFactory.NewCoordinateRepository().UpdateStatus(ctx, coordinate.ID, entity.StatusFetched, repository.StatusUpdate{
			FetchedImageID: &image.ID,
		})
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to persist image and link coordinate")
	}

	return image.ID, nil
}

// markFailed is best effort; the pipeline error stays the primary error.
func (s *acquisitionService) markFailed(ctx context.Context, logger *slog.Logger, coordinateID uuid.UUID, cause error) {
	if err := s.coordinateRepo.UpdateStatus(ctx, coordinateID, entity.StatusFailed, repository.StatusUpdate{}); err != nil {
		logger.Error("[Acquisition] Failed to mark coordinate failed",
			slog.String("coordinate_id", coordinateID.String()),
			slog.Any("error", err),
		)

		return
	}

	logger.Warn("[Acquisition] Coordinate marked failed",
		slog.String("coordinate_id", coordinateID.String()),
		slog.Any("error", cause),
	)
}
