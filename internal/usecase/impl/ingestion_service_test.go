package impl

import (
	"context"
	"errors"
	"math"
	"testing"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	"cropsat/internal/domain/service"
	mockRepo "cropsat/internal/mocks/repository"
	mockSvc "cropsat/internal/mocks/service"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIngestionMocks(t *testing.T) (*mockRepo.MockCoordinateRepository, *mockRepo.MockFarmRepository, *mockSvc.MockJobPublisher, usecase.IngestionUsecase) {
	mockCoordRepo := mockRepo.NewMockCoordinateRepository(t)
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	mockPublisher := mockSvc.NewMockJobPublisher(t)
	svc := NewIngestionService(mockCoordRepo, mockFarmRepo, mockPublisher)

	return mockCoordRepo, mockFarmRepo, mockPublisher, svc
}

func ownedFarm(ownerID uuid.UUID) *entity.Farm {
	return &entity.Farm{ID: uuid.New(), OwnerID: ownerID, Name: "North Field"}
}

func TestIngestionService_SubmitCoordinate_Success(t *testing.T) {
	mockCoordRepo, mockFarmRepo, mockPublisher, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)
	input := &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-001",
		Lat:           23.0,
		Lng:           87.0,
	}

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-001").
		Return(nil, repository.ErrCoordinateNotFound)

	mockCoordRepo.EXPECT().
		CreateCoordinate(ctx, mock.AnythingOfType("*entity.Coordinate")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishFetchJob(ctx, mock.AnythingOfType("*service.FetchJob")).
		Run(func(_ context.Context, job *service.FetchJob) {
			assert.Equal(t, farm.ID.String(), job.FarmID)
			assert.InDelta(t, 23.0, job.Lat, 1e-9)
			assert.InDelta(t, 87.0, job.Lng, 1e-9)
		}).
		Return(nil)

	coordinate, err := svc.SubmitCoordinate(ctx, ownerID, farm.ID, input)
	require.NoError(t, err)
	require.NotNil(t, coordinate)
	assert.Equal(t, entity.StatusQueued, coordinate.Status)
	assert.Equal(t, farm.ID, coordinate.FarmID)
	assert.Equal(t, "evt-001", coordinate.ClientEventID)
}

func TestIngestionService_SubmitCoordinate_Idempotent(t *testing.T) {
	mockCoordRepo, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)
	existing := &entity.Coordinate{
		ID:            uuid.New(),
		FarmID:        farm.ID,
		ClientEventID: "evt-001",
		Status:        entity.StatusProcessed,
	}

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-001").
		Return(existing, nil)

	// No CreateCoordinate, no PublishFetchJob: a repeat submission must
	// not enqueue a second job.
	coordinate, err := svc.SubmitCoordinate(ctx, ownerID, farm.ID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-001",
		Lat:           23.0,
		Lng:           87.0,
	})
	require.NoError(t, err)
	assert.Equal(t, existing, coordinate)
}

func TestIngestionService_SubmitCoordinate_DuplicateRace(t *testing.T) {
	mockCoordRepo, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)
	winner := &entity.Coordinate{
		ID:            uuid.New(),
		FarmID:        farm.ID,
		ClientEventID: "evt-race",
		Status:        entity.StatusQueued,
	}

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-race").
		Return(nil, repository.ErrCoordinateNotFound).Once()

	mockCoordRepo.EXPECT().
		CreateCoordinate(ctx, mock.AnythingOfType("*entity.Coordinate")).
		Return(repository.ErrDuplicateCoordinate)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-race").
		Return(winner, nil).Once()

	coordinate, err := svc.SubmitCoordinate(ctx, ownerID, farm.ID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-race",
		Lat:           23.0,
		Lng:           87.0,
	})
	require.NoError(t, err)
	assert.Equal(t, winner, coordinate)
}

func TestIngestionService_SubmitCoordinate_FarmNotFound(t *testing.T) {
	_, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	farmID := uuid.New()

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farmID).
		Return(nil, repository.ErrFarmNotFound)

	_, err := svc.SubmitCoordinate(ctx, uuid.New(), farmID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-001",
		Lat:           23.0,
		Lng:           87.0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}

func TestIngestionService_SubmitCoordinate_ForeignFarm(t *testing.T) {
	_, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	farm := ownedFarm(uuid.New())

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	_, err := svc.SubmitCoordinate(ctx, uuid.New(), farm.ID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-001",
		Lat:           23.0,
		Lng:           87.0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIngestionService_SubmitCoordinate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SubmitCoordinateInput
	}{
		{name: "missing client event id", input: usecase.SubmitCoordinateInput{Lat: 1, Lng: 1}},
		{name: "NaN lat", input: usecase.SubmitCoordinateInput{ClientEventID: "e", Lat: math.NaN(), Lng: 1}},
		{name: "Inf lng", input: usecase.SubmitCoordinateInput{ClientEventID: "e", Lat: 1, Lng: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, svc := newIngestionMocks(t)

			_, err := svc.SubmitCoordinate(context.Background(), uuid.New(), uuid.New(), &tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestIngestionService_SubmitCoordinate_OutOfRangeDegreesAccepted(t *testing.T) {
	mockCoordRepo, mockFarmRepo, mockPublisher, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)
	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-oob").
		Return(nil, repository.ErrCoordinateNotFound)
	mockCoordRepo.EXPECT().
		CreateCoordinate(ctx, mock.AnythingOfType("*entity.Coordinate")).
		Return(nil)
	mockPublisher.EXPECT().
		PublishFetchJob(ctx, mock.AnythingOfType("*service.FetchJob")).
		Return(nil)

	coordinate, err := svc.SubmitCoordinate(ctx, ownerID, farm.ID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-oob",
		Lat:           123.45,
		Lng:           -200.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 123.45, coordinate.Lat, 1e-9)
}

func TestIngestionService_SubmitCoordinate_EnqueueFailure(t *testing.T) {
	mockCoordRepo, mockFarmRepo, mockPublisher, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)
	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-001").
		Return(nil, repository.ErrCoordinateNotFound)
	mockCoordRepo.EXPECT().
		CreateCoordinate(ctx, mock.AnythingOfType("*entity.Coordinate")).
		Return(nil)
	mockPublisher.EXPECT().
		PublishFetchJob(ctx, mock.AnythingOfType("*service.FetchJob")).
		Return(errors.New("broker unavailable"))

	_, err := svc.SubmitCoordinate(ctx, ownerID, farm.ID, &usecase.SubmitCoordinateInput{
		ClientEventID: "evt-001",
		Lat:           23.0,
		Lng:           87.0,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "JOB_ENQUEUE_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "broker unavailable")
}

func TestIngestionService_SyncOfflineEvents_PartialFailure(t *testing.T) {
	mockCoordRepo, mockFarmRepo, mockPublisher, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)
	existing := &entity.Coordinate{
		ID:            uuid.New(),
		FarmID:        farm.ID,
		ClientEventID: "evt-b",
		Status:        entity.StatusFetched,
	}

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil).Times(2)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-a").
		Return(nil, repository.ErrCoordinateNotFound)
	mockCoordRepo.EXPECT().
		CreateCoordinate(ctx, mock.AnythingOfType("*entity.Coordinate")).
		Return(nil)
	mockPublisher.EXPECT().
		PublishFetchJob(ctx, mock.AnythingOfType("*service.FetchJob")).
		Return(nil)

	mockCoordRepo.EXPECT().
		FindByFarmAndClientEventID(ctx, farm.ID, "evt-b").
		Return(existing, nil)

	events := []usecase.SyncEventInput{
		{FarmID: farm.ID, ClientEventID: "evt-a", Lat: 23.0, Lng: 87.0},
		{FarmID: farm.ID, ClientEventID: "evt-b", Lat: 23.1, Lng: 87.1},
		{FarmID: farm.ID, ClientEventID: "", Lat: 23.2, Lng: 87.2},
	}

	results := svc.SyncOfflineEvents(ctx, ownerID, events)
	require.Len(t, results, 3)

	assert.Equal(t, usecase.SyncResultCreated, results[0].Status)
	assert.NotNil(t, results[0].Coordinate)

	assert.Equal(t, usecase.SyncResultExists, results[1].Status)
	assert.Equal(t, existing, results[1].Coordinate)

	assert.Equal(t, usecase.SyncResultError, results[2].Status)
	assert.NotEmpty(t, results[2].Error)
}

func TestIngestionService_GetCoordinateStatus(t *testing.T) {
	mockCoordRepo, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := ownedFarm(ownerID)
	imageID := uuid.New()
	coordinate := &entity.Coordinate{
		ID:             uuid.New(),
		FarmID:         farm.ID,
		Status:         entity.StatusProcessed,
		FetchedImageID: &imageID,
	}
	image := &entity.Image{ID: imageID, Key: "satellites/farm-x/img.tiff"}

	mockCoordRepo.EXPECT().
		FindCoordinateWithImage(ctx, coordinate.ID).
		Return(coordinate, image, nil)
	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	result, err := svc.GetCoordinateStatus(ctx, ownerID, coordinate.ID)
	require.NoError(t, err)
	assert.Equal(t, coordinate, result.Coordinate)
	assert.Equal(t, image, result.Image)
}

func TestIngestionService_GetCoordinateStatus_NotFound(t *testing.T) {
	mockCoordRepo, _, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	coordinateID := uuid.New()

	mockCoordRepo.EXPECT().
		FindCoordinateWithImage(ctx, coordinateID).
		Return(nil, nil, repository.ErrCoordinateNotFound)

	_, err := svc.GetCoordinateStatus(ctx, uuid.New(), coordinateID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateNotFound)
}

func TestIngestionService_GetCoordinateStatus_ForeignFarm(t *testing.T) {
	mockCoordRepo, mockFarmRepo, _, svc := newIngestionMocks(t)

	ctx := context.Background()
	farm := ownedFarm(uuid.New())
	coordinate := &entity.Coordinate{ID: uuid.New(), FarmID: farm.ID, Status: entity.StatusQueued}

	mockCoordRepo.EXPECT().
		FindCoordinateWithImage(ctx, coordinate.ID).
		Return(coordinate, nil, nil)
	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil)

	_, err := svc.GetCoordinateStatus(ctx, uuid.New(), coordinate.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
