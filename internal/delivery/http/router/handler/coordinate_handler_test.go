package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cropsat/internal/delivery/http/validator"
	"cropsat/internal/domain/entity"
	domainerrors "cropsat/internal/domain/errors"
	mockUsecase "cropsat/internal/mocks/usecase"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoordinateHandler(t *testing.T) (*CoordinateHandler, *mockUsecase.MockIngestionUsecase) {
	t.Helper()

	ingestionUC := mockUsecase.NewMockIngestionUsecase(t)
	h := NewCoordinateHandler(CoordinateHandlerParams{
		IngestionUC: ingestionUC,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, ingestionUC
}

// newEchoContext builds an authenticated request context the way the
// auth middleware would leave it.
func newEchoContext(t *testing.T, method, path string, body any, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", ownerID)

	return c, rec
}

func TestCoordinateHandler_SubmitCoordinate(t *testing.T) {
	h, ingestionUC := newCoordinateHandler(t)

	ownerID := uuid.New()
	farmID := uuid.New()
	coordinate := &entity.Coordinate{
		ID:            uuid.New(),
		FarmID:        farmID,
		ClientEventID: "evt-1",
		Status:        entity.StatusQueued,
	}

	ingestionUC.EXPECT().
		SubmitCoordinate(mock.Anything, ownerID, farmID, mock.AnythingOfType("*usecase.SubmitCoordinateInput")).
		Return(coordinate, nil)

	body := SubmitCoordinateRequest{ClientEventID: "evt-1", Lat: 12.97, Lng: 77.59}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms/"+farmID.String()+"/coordinates", body, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.SubmitCoordinate(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), coordinate.ID.String())
}

func TestCoordinateHandler_SubmitCoordinate_MissingClientEventID(t *testing.T) {
	h, _ := newCoordinateHandler(t)

	farmID := uuid.New()
	body := SubmitCoordinateRequest{Lat: 12.97, Lng: 77.59}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms/"+farmID.String()+"/coordinates", body, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.SubmitCoordinate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoordinateHandler_SubmitCoordinate_InvalidFarmID(t *testing.T) {
	h, _ := newCoordinateHandler(t)

	body := SubmitCoordinateRequest{ClientEventID: "evt-1"}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms/nope/coordinates", body, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.SubmitCoordinate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoordinateHandler_SubmitCoordinate_FarmNotFound(t *testing.T) {
	h, ingestionUC := newCoordinateHandler(t)

	ownerID := uuid.New()
	farmID := uuid.New()

	ingestionUC.EXPECT().
		SubmitCoordinate(mock.Anything, ownerID, farmID, mock.AnythingOfType("*usecase.SubmitCoordinateInput")).
		Return(nil, domainerrors.ErrFarmNotFound)

	body := SubmitCoordinateRequest{ClientEventID: "evt-1"}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/farms/"+farmID.String()+"/coordinates", body, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.SubmitCoordinate(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "FARM_NOT_FOUND")
}

func TestCoordinateHandler_SyncEvents(t *testing.T) {
	h, ingestionUC := newCoordinateHandler(t)

	ownerID := uuid.New()
	farmID := uuid.New()

	ingestionUC.EXPECT().
		SyncOfflineEvents(mock.Anything, ownerID, mock.AnythingOfType("[]usecase.SyncEventInput")).
		Return([]usecase.SyncEventResult{
			{ClientEventID: "evt-1", Status: usecase.SyncResultCreated},
			{ClientEventID: "evt-2", Status: usecase.SyncResultExists},
		})

	body := SyncEventsRequest{Events: []SyncEventRequest{
		{FarmID: farmID, ClientEventID: "evt-1", Lat: 1, Lng: 2},
		{FarmID: farmID, ClientEventID: "evt-2", Lat: 3, Lng: 4},
	}}
	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/coordinates/sync", body, ownerID)

	require.NoError(t, h.SyncEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), usecase.SyncResultCreated)
	assert.Contains(t, rec.Body.String(), usecase.SyncResultExists)
}

func TestCoordinateHandler_GetCoordinateStatus(t *testing.T) {
	h, ingestionUC := newCoordinateHandler(t)

	ownerID := uuid.New()
	coordinateID := uuid.New()
	imageID := uuid.New()

	ingestionUC.EXPECT().
		GetCoordinateStatus(mock.Anything, ownerID, coordinateID).
		Return(&usecase.CoordinateStatusResult{
			Coordinate: &entity.Coordinate{ID: coordinateID, Status: entity.StatusProcessed, FetchedImageID: &imageID},
			Image:      &entity.Image{ID: imageID, Key: "satellites/farm-x/img.tiff"},
		}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/coordinates/"+coordinateID.String()+"/status", nil, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(coordinateID.String())

	require.NoError(t, h.GetCoordinateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(entity.StatusProcessed))
	assert.Contains(t, rec.Body.String(), imageID.String())
}

func TestCoordinateHandler_GetCoordinateStatus_NotFound(t *testing.T) {
	h, ingestionUC := newCoordinateHandler(t)

	ownerID := uuid.New()
	coordinateID := uuid.New()

	ingestionUC.EXPECT().
		GetCoordinateStatus(mock.Anything, ownerID, coordinateID).
		Return(nil, domainerrors.ErrCoordinateNotFound)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/coordinates/"+coordinateID.String()+"/status", nil, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(coordinateID.String())

	require.NoError(t, h.GetCoordinateStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCoordinateHandler_Unauthenticated(t *testing.T) {
	h, _ := newCoordinateHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coordinates/x/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetCoordinateStatus(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
