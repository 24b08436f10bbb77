// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"cropsat/internal/delivery/http/response"
	domainerrors "cropsat/internal/domain/errors"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FarmHandlerParams holds dependencies for FarmHandler, injected by Fx.
type FarmHandlerParams struct {
	fx.In

	FarmUC usecase.FarmUsecase
	Logger *slog.Logger
}

// FarmHandler holds dependencies for farm-related handlers
type FarmHandler struct {
	farmUC usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler
func NewFarmHandler(params FarmHandlerParams) *FarmHandler {
	return &FarmHandler{
		farmUC: params.FarmUC,
		logger: params.Logger,
	}
}

// CreateFarmRequest represents the request body for registering a farm
type CreateFarmRequest struct {
	Name      string  `json:"name" validate:"required"`
	CenterLat float64 `json:"center_lat" validate:"min=-90,max=90"`
	CenterLng float64 `json:"center_lng" validate:"min=-180,max=180"`
}

// CreateFarm handles registering a new farm for the authenticated owner
func (h *FarmHandler) CreateFarm(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateFarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateFarmInput{
		Name:      req.Name,
		CenterLat: req.CenterLat,
		CenterLng: req.CenterLng,
	}

	farm, err := h.farmUC.CreateFarm(c.Request().Context(), ownerID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, farm, "Farm created successfully")
}

// GetFarms handles listing the authenticated owner's farms
func (h *FarmHandler) GetFarms(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	farms, err := h.farmUC.GetFarms(c.Request().Context(), ownerID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, farms, "Farms retrieved successfully")
}

// GetFarm handles retrieving one farm owned by the authenticated owner
func (h *FarmHandler) GetFarm(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid farm ID")
	}

	farm, err := h.farmUC.GetFarm(c.Request().Context(), ownerID, farmID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, farm, "Farm retrieved successfully")
}

// HealthCheck simple liveness endpoint
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError maps application errors onto the response envelope
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
