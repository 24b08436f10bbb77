package handler

import (
	"log/slog"
	"net/http"

	"cropsat/internal/delivery/http/response"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CoordinateHandlerParams holds dependencies for CoordinateHandler, injected by Fx.
type CoordinateHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// CoordinateHandler holds dependencies for coordinate ingestion handlers
type CoordinateHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewCoordinateHandler is the constructor for CoordinateHandler
func NewCoordinateHandler(params CoordinateHandlerParams) *CoordinateHandler {
	return &CoordinateHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// SubmitCoordinateRequest represents the request body for submitting a coordinate
type SubmitCoordinateRequest struct {
	ClientEventID string   `json:"client_event_id" validate:"required"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Accuracy      *float64 `json:"accuracy,omitempty"`
}

// SyncEventsRequest represents an offline sync batch
type SyncEventsRequest struct {
	Events []SyncEventRequest `json:"events" validate:"required,dive"`
}

// SyncEventRequest is a single client-buffered event in a sync batch
type SyncEventRequest struct {
	FarmID        uuid.UUID `json:"farm_id" validate:"required"`
	ClientEventID string    `json:"client_event_id" validate:"required"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Accuracy      *float64  `json:"accuracy,omitempty"`
}

// SubmitCoordinate handles a coordinate submission for a farm. The
// acquisition pipeline runs asynchronously; the enqueued coordinate is
// returned immediately with its queued status.
func (h *CoordinateHandler) SubmitCoordinate(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid farm ID")
	}

	var req SubmitCoordinateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitCoordinateInput{
		ClientEventID: req.ClientEventID,
		Lat:           req.Lat,
		Lng:           req.Lng,
		Accuracy:      req.Accuracy,
	}

	coordinate, err := h.ingestionUC.SubmitCoordinate(c.Request().Context(), ownerID, farmID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, coordinate, "Coordinate accepted for acquisition")
}

// SyncEvents handles an offline sync batch. Each event is admitted
// independently; the response carries one result per input event.
func (h *CoordinateHandler) SyncEvents(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SyncEventsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	events := make([]usecase.SyncEventInput, 0, len(req.Events))
	for _, event := range req.Events {
		events = append(events, usecase.SyncEventInput{
			FarmID:        event.FarmID,
			ClientEventID: event.ClientEventID,
			Lat:           event.Lat,
			Lng:           event.Lng,
			Accuracy:      event.Accuracy,
		})
	}

	results := h.ingestionUC.SyncOfflineEvents(c.Request().Context(), ownerID, events)

	return response.Success(c, http.StatusOK, results, "Sync batch processed")
}

// GetCoordinateStatus handles the acquisition status read path
func (h *CoordinateHandler) GetCoordinateStatus(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	coordinateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coordinate ID")
	}

	result, err := h.ingestionUC.GetCoordinateStatus(c.Request().Context(), ownerID, coordinateID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Coordinate status retrieved successfully")
}
