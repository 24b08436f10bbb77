// Package handler processes Pub/Sub push deliveries for the fetch worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cropsat/config"
	deliverycontext "cropsat/internal/delivery/context"
	"cropsat/internal/domain/constants"
	"cropsat/internal/domain/repository"
	"cropsat/internal/domain/service"
	"cropsat/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription    string `json:"subscription"`
	DeliveryAttempt int    `json:"deliveryAttempt,omitempty"`
}

// FetchHandler handles Pub/Sub push messages for imagery acquisition
type FetchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	acquisitionUC  usecase.AcquisitionUsecase
}

// FetchHandlerParams holds dependencies for the FetchHandler
type FetchHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	AcquisitionUC usecase.AcquisitionUsecase
}

// NewFetchHandler creates a new Pub/Sub push handler
func NewFetchHandler(params FetchHandlerParams) *FetchHandler {
	// Only Google-signed pushes carry a verifiable token; local pushes
	// and development environments skip verification.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &FetchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		acquisitionUC:  params.AcquisitionUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// Response codes drive the queue's retry behavior: 2xx acknowledges the
// delivery, anything else redelivers it. Malformed payloads and fetch
// jobs whose coordinate no longer exists are acknowledged so they never
// loop; transient pipeline failures return 503 to request redelivery.
func (h *FetchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse fetch job
	var job service.FetchJob
	if err := json.Unmarshal(data, &job); err != nil {
		h.logger.Error("[Worker] Failed to parse fetch job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if _, err := uuid.Parse(job.CoordinateID); err != nil {
		h.logger.Error("[Worker] Invalid coordinate ID in fetch job",
			slog.String("coordinate_id", job.CoordinateID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > job field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &job)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing fetch job",
		slog.String("coordinate_id", job.CoordinateID),
		slog.String("farm_id", job.FarmID),
		slog.Int("delivery_attempt", pushMsg.DeliveryAttempt),
	)

	result, err := h.acquisitionUC.HandleFetchJob(ctx, &job)
	if err != nil {
		retryable := isRetryableJobError(err)
		reqLogger.Error("[Worker] Failed to process fetch job",
			slog.String("coordinate_id", job.CoordinateID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// Return 503 for retryable errors to trigger a queue redelivery.
		// Return 200 for non-retryable errors to prevent infinite retries.
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Fetch job processed successfully",
		slog.String("coordinate_id", job.CoordinateID),
		slog.String("image_id", result.ImageID.String()),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the job, or generates a new one
func (h *FetchHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, job *service.FetchJob) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try job field (from JSON payload)
	if job.RequestID != "" {
		return job.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// isRetryableJobError decides whether a pipeline failure warrants a
// redelivery. A coordinate that no longer exists can never succeed;
// everything else (provider, storage, database) is assumed transient.
func isRetryableJobError(err error) bool {
	return !errors.Is(err, repository.ErrCoordinateNotFound)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The expected audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
