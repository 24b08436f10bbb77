// Package http hosts the public API server.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cropsat/config"
	"cropsat/internal/delivery"
	httpmiddleware "cropsat/internal/delivery/http/middleware"
	"cropsat/internal/delivery/http/router"
	"cropsat/internal/delivery/http/validator"
	"cropsat/internal/delivery/middleware"
	"cropsat/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the public API server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Request logging
	echoServer.Use(slogecho.New(params.Logger))

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the API server and blocks until shutdown.
func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
