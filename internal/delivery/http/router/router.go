// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cropsat/internal/delivery/http/middleware"
	"cropsat/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	FarmHandler       *handler.FarmHandler
	CoordinateHandler *handler.CoordinateHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	farmHandler       *handler.FarmHandler
	coordinateHandler *handler.CoordinateHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		farmHandler:       params.FarmHandler,
		coordinateHandler: params.CoordinateHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.POST("/farms", r.farmHandler.CreateFarm)
		api.GET("/farms", r.farmHandler.GetFarms)
		api.GET("/farms/:id", r.farmHandler.GetFarm)

		api.POST("/farms/:id/coordinates", r.coordinateHandler.SubmitCoordinate)
		api.GET("/coordinates/:id/status", r.coordinateHandler.GetCoordinateStatus)
		api.POST("/coordinates/sync", r.coordinateHandler.SyncEvents)
	}
}
