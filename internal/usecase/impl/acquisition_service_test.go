package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cropsat/config"
	"cropsat/internal/domain/entity"
	"cropsat/internal/domain/repository"
	"cropsat/internal/domain/service"
	"cropsat/internal/errors"
	mockRepo "cropsat/internal/mocks/repository"
	mockSvc "cropsat/internal/mocks/service"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type acquisitionMocks struct {
	coordRepo *mockRepo.MockCoordinateRepository
	txManager *mockRepo.MockTransactionManager
	imagery   *mockSvc.MockImageryProvider
	storage   *mockSvc.MockObjectStorage
	svc       usecase.AcquisitionUsecase
}

func newAcquisitionMocks(t *testing.T) *acquisitionMocks {
	m := &acquisitionMocks{
		coordRepo: mockRepo.NewMockCoordinateRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		imagery:   mockSvc.NewMockImageryProvider(t),
		storage:   mockSvc.NewMockObjectStorage(t),
	}

	cfg := &config.Config{
		Sentinel: &config.SentinelConfig{LookbackDays: 30, MaxCloudCoverage: 20},
		Storage:  &config.StorageConfig{KeyPrefix: "satellites"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m.svc = NewAcquisitionService(cfg, logger, m.coordRepo, m.txManager, m.imagery, m.storage)

	return m
}

func queuedCoordinate(farmID uuid.UUID) *entity.Coordinate {
	return &entity.Coordinate{
		ID:     uuid.New(),
		FarmID: farmID,
		Lat:    12.97,
		Lng:    77.59,
		Status: entity.StatusQueued,
	}
}

func fetchJobFor(coordinate *entity.Coordinate) *service.FetchJob {
	return &service.FetchJob{
		CoordinateID: coordinate.ID.String(),
		FarmID:       coordinate.FarmID.String(),
		Lat:          coordinate.Lat,
		Lng:          coordinate.Lng,
	}
}

func TestAcquisitionService_HandleFetchJob_Success(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	farmID := uuid.New()
	coordinate := queuedCoordinate(farmID)
	job := fetchJobFor(coordinate)
	imageBytes := []byte("tiff-bytes")

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)

	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFetching, repository.StatusUpdate{}).
		Return(nil)

	m.imagery.EXPECT().
		GetToken(ctx).
		Return("token-123", nil)

	m.imagery.EXPECT().
		FetchImage(ctx, "token-123", mock.AnythingOfType("service.ImageRequest")).
		Run(func(_ context.Context, _ string, req service.ImageRequest) {
			assert.InDelta(t, 12.87, req.BBox.MinLat, 1e-9)
			assert.InDelta(t, 13.07, req.BBox.MaxLat, 1e-9)
			assert.InDelta(t, 77.49, req.BBox.MinLng, 1e-9)
			assert.InDelta(t, 77.69, req.BBox.MaxLng, 1e-9)
			assert.Equal(t, 20, req.MaxCloudCoverage)
			assert.True(t, req.From.Before(req.To))
		}).
		Return(imageBytes, nil)

	var uploadedKey string
	m.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), imageBytes, "image/tiff").
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (*service.StoredObject, error) {
			uploadedKey = key

			return &service.StoredObject{Key: key, Location: "file:///tmp/bucket/" + key}, nil
		})

	txCoordRepo := mockRepo.NewMockCoordinateRepository(t)
	txImageRepo := mockRepo.NewMockImageRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewImageRepository().Return(txImageRepo)
	factory.EXPECT().NewCoordinateRepository().Return(txCoordRepo)

	var linkedImageID uuid.UUID
	txImageRepo.EXPECT().
		CreateImage(ctx, mock.AnythingOfType("*entity.Image")).
		Run(func(_ context.Context, image *entity.Image) {
			linkedImageID = image.ID
			assert.Equal(t, int64(len(imageBytes)), image.Meta.Size)
			assert.NotEmpty(t, image.Meta.Location)
		}).
		Return(nil)
	txCoordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFetched, mock.AnythingOfType("repository.StatusUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.CoordinateStatus, update repository.StatusUpdate) {
			require.NotNil(t, update.FetchedImageID)
			assert.Equal(t, linkedImageID, *update.FetchedImageID)
		}).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusProcessed, mock.AnythingOfType("repository.StatusUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.CoordinateStatus, update repository.StatusUpdate) {
			assert.NotNil(t, update.ProcessedAt)
		}).
		Return(nil)

	result, err := m.svc.HandleFetchJob(ctx, job)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, linkedImageID, result.ImageID)

	assert.True(t, strings.HasPrefix(uploadedKey, "satellites/farm-"+farmID.String()+"/"+coordinate.ID.String()+"-"))
	assert.True(t, strings.HasSuffix(uploadedKey, ".tiff"))
}

func TestAcquisitionService_HandleFetchJob_AlreadyCompleted(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	imageID := uuid.New()
	coordinate := queuedCoordinate(uuid.New())
	coordinate.Status = entity.StatusProcessed
	coordinate.FetchedImageID = &imageID

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)

	// No status writes, no external calls: the duplicate delivery is
	// acknowledged from the stored link alone.
	result, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.NoError(t, err)
	assert.Equal(t, imageID, result.ImageID)
}

func TestAcquisitionService_HandleFetchJob_ResumesStrandedFetched(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	imageID := uuid.New()
	coordinate := queuedCoordinate(uuid.New())
	coordinate.Status = entity.StatusFetched
	coordinate.FetchedImageID = &imageID

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)

	// Redelivery after a crash between the fetched link and the processed
	// write: no re-fetch, only the terminal status transition remains.
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusProcessed, mock.AnythingOfType("repository.StatusUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.CoordinateStatus, update repository.StatusUpdate) {
			assert.NotNil(t, update.ProcessedAt)
		}).
		Return(nil)

	result, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.NoError(t, err)
	assert.Equal(t, imageID, result.ImageID)
}

func TestAcquisitionService_HandleFetchJob_ResumeStatusWriteFails(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	imageID := uuid.New()
	coordinate := queuedCoordinate(uuid.New())
	coordinate.Status = entity.StatusFetched
	coordinate.FetchedImageID = &imageID

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusProcessed, mock.AnythingOfType("repository.StatusUpdate")).
		Return(errors.New("connection reset"))

	// The delivery must fail so the queue retries the transition later.
	_, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.Error(t, err)
}

func TestAcquisitionService_HandleFetchJob_InvalidCoordinateID(t *testing.T) {
	m := newAcquisitionMocks(t)

	_, err := m.svc.HandleFetchJob(context.Background(), &service.FetchJob{CoordinateID: "not-a-uuid"})
	require.Error(t, err)
}

func TestAcquisitionService_HandleFetchJob_TokenFailure(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	coordinate := queuedCoordinate(uuid.New())

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFetching, repository.StatusUpdate{}).
		Return(nil)
	m.imagery.EXPECT().
		GetToken(ctx).
		Return("", errors.Wrap(service.ErrImageryAuth, "401 from token endpoint"))
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFailed, repository.StatusUpdate{}).
		Return(nil)

	_, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrImageryAuth)
}

func TestAcquisitionService_HandleFetchJob_StorageFailure(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	coordinate := queuedCoordinate(uuid.New())

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFetching, repository.StatusUpdate{}).
		Return(nil)
	m.imagery.EXPECT().
		GetToken(ctx).
		Return("token-123", nil)
	m.imagery.EXPECT().
		FetchImage(ctx, "token-123", mock.AnythingOfType("service.ImageRequest")).
		Return([]byte("tiff-bytes"), nil)
	m.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/tiff").
		Return(nil, errors.Wrap(service.ErrObjectStorage, "bucket unreachable"))
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFailed, repository.StatusUpdate{}).
		Return(nil)

	_, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrObjectStorage)
}

func TestAcquisitionService_HandleFetchJob_TxFailure(t *testing.T) {
	m := newAcquisitionMocks(t)

	ctx := context.Background()
	coordinate := queuedCoordinate(uuid.New())

	m.coordRepo.EXPECT().
		FindCoordinateByID(ctx, coordinate.ID).
		Return(coordinate, nil)
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFetching, repository.StatusUpdate{}).
		Return(nil)
	m.imagery.EXPECT().
		GetToken(ctx).
		Return("token-123", nil)
	m.imagery.EXPECT().
		FetchImage(ctx, "token-123", mock.AnythingOfType("service.ImageRequest")).
		Return([]byte("tiff-bytes"), nil)
	m.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/tiff").
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (*service.StoredObject, error) {
			return &service.StoredObject{Key: key, Location: "file:///tmp/bucket/" + key}, nil
		})
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))
	m.coordRepo.EXPECT().
		UpdateStatus(ctx, coordinate.ID, entity.StatusFailed, repository.StatusUpdate{}).
		Return(nil)

	_, err := m.svc.HandleFetchJob(ctx, fetchJobFor(coordinate))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}
