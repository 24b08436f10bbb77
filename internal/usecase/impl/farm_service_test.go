package impl

import (
	"context"
	"testing"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/domain/repository"
	mockRepo "cropsat/internal/mocks/repository"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFarmService_CreateFarm_Success(t *testing.T) {
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	svc := NewFarmService(mockFarmRepo)

	ctx := context.Background()
	ownerID := uuid.New()

	mockFarmRepo.EXPECT().
		CreateFarm(ctx, mock.AnythingOfType("*entity.Farm")).
		Return(nil)

	farm, err := svc.CreateFarm(ctx, ownerID, &usecase.CreateFarmInput{
		Name:      "North Field",
		CenterLat: 23.0,
		CenterLng: 87.0,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, farm.OwnerID)
	assert.Equal(t, "North Field", farm.Name)
	assert.NotEqual(t, uuid.Nil, farm.ID)
}

func TestFarmService_CreateFarm_MissingName(t *testing.T) {
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	svc := NewFarmService(mockFarmRepo)

	_, err := svc.CreateFarm(context.Background(), uuid.New(), &usecase.CreateFarmInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFarmService_GetFarm_Ownership(t *testing.T) {
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	svc := NewFarmService(mockFarmRepo)

	ctx := context.Background()
	ownerID := uuid.New()
	farm := &entity.Farm{ID: uuid.New(), OwnerID: ownerID, Name: "North Field"}

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farm.ID).
		Return(farm, nil).Times(2)

	got, err := svc.GetFarm(ctx, ownerID, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, farm, got)

	_, err = svc.GetFarm(ctx, uuid.New(), farm.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestFarmService_GetFarm_NotFound(t *testing.T) {
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	svc := NewFarmService(mockFarmRepo)

	ctx := context.Background()
	farmID := uuid.New()

	mockFarmRepo.EXPECT().
		FindFarmByID(ctx, farmID).
		Return(nil, repository.ErrFarmNotFound)

	_, err := svc.GetFarm(ctx, uuid.New(), farmID)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}

func TestFarmService_GetFarms(t *testing.T) {
	mockFarmRepo := mockRepo.NewMockFarmRepository(t)
	svc := NewFarmService(mockFarmRepo)

	ctx := context.Background()
	ownerID := uuid.New()
	farms := []*entity.Farm{
		{ID: uuid.New(), OwnerID: ownerID, Name: "North Field"},
		{ID: uuid.New(), OwnerID: ownerID, Name: "South Field"},
	}

	mockFarmRepo.EXPECT().
		FindFarmsByOwner(ctx, ownerID).
		Return(farms, nil)

	got, err := svc.GetFarms(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, farms, got)
}
