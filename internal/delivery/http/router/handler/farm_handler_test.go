package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	mockUsecase "cropsat/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFarmHandler(t *testing.T) (*FarmHandler, *mockUsecase.MockFarmUsecase) {
	t.Helper()

	farmUC := mockUsecase.NewMockFarmUsecase(t)
	h := NewFarmHandler(FarmHandlerParams{
		FarmUC: farmUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, farmUC
}

func TestFarmHandler_CreateFarm(t *testing.T) {
	h, farmUC := newFarmHandler(t)

	ownerID := uuid.New()
	farm := &entity.Farm{ID: uuid.New(), OwnerID: ownerID, Name: "North paddock"}

	farmUC.EXPECT().
		CreateFarm(mock.Anything, ownerID, mock.AnythingOfType("*usecase.CreateFarmInput")).
		Return(farm, nil)

	body := CreateFarmRequest{Name: "North paddock", CenterLat: 12.97, CenterLng: 77.59}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms", body, ownerID)

	require.NoError(t, h.CreateFarm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), farm.ID.String())
}

func TestFarmHandler_CreateFarm_MissingName(t *testing.T) {
	h, _ := newFarmHandler(t)

	body := CreateFarmRequest{CenterLat: 12.97, CenterLng: 77.59}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms", body, uuid.New())

	require.NoError(t, h.CreateFarm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmHandler_GetFarm_Forbidden(t *testing.T) {
	h, farmUC := newFarmHandler(t)

	ownerID := uuid.New()
	farmID := uuid.New()

	farmUC.EXPECT().
		GetFarm(mock.Anything, ownerID, farmID).
		Return(nil, domainerrors.ErrForbidden)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/farms/"+farmID.String(), nil, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.GetFarm(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFarmHandler_GetFarms(t *testing.T) {
	h, farmUC := newFarmHandler(t)

	ownerID := uuid.New()
	farms := []*entity.Farm{
		{ID: uuid.New(), OwnerID: ownerID, Name: "North paddock"},
		{ID: uuid.New(), OwnerID: ownerID, Name: "River block"},
	}

	farmUC.EXPECT().GetFarms(mock.Anything, ownerID).Return(farms, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/farms", nil, ownerID)

	require.NoError(t, h.GetFarms(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "River block")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newEchoContext(t, http.MethodGet, "/health", nil, uuid.New())

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
