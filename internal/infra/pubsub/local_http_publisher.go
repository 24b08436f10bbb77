package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cropsat/config"
	"cropsat/internal/domain/service"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher implements JobPublisher by sending HTTP POST requests
// to a local worker endpoint, simulating Pub/Sub push behavior for
// development. Unlike the Google provider, where redelivery is the
// subscription's job, this publisher runs the attempt loop itself:
// exponential backoff between deliveries, capped at MaxAttempts, after
// which the job is dropped and logged.
type localHTTPPublisher struct {
	endpoint    string
	maxAttempts int
	retryDelay  time.Duration
	httpClient  *http.Client
	logger      *slog.Logger

	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// PubSubPushMessage represents the structure of a Pub/Sub push message.
// This mimics the format Google Pub/Sub uses when pushing to HTTP
// endpoints, including the deliveryAttempt counter that subscriptions
// with a dead-letter policy carry.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription    string `json:"subscription"`
	DeliveryAttempt int    `json:"deliveryAttempt,omitempty"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(cfg *config.PubSubConfig, logger *slog.Logger) service.JobPublisher {
	rootCtx, cancel := context.WithCancel(context.Background())

	return &localHTTPPublisher{
		endpoint:    cfg.LocalEndpoint,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logger,
		rootCtx: rootCtx,
		cancel:  cancel,
	}
}

// PublishFetchJob enqueues the job for asynchronous push delivery.
// Serialization errors are reported synchronously; delivery failures are
// the retry loop's concern, mirroring a real queue where a successful
// enqueue says nothing about processing.
func (p *localHTTPPublisher) PublishFetchJob(_ context.Context, job *service.FetchJob) error {
	jobData, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/fetch-job-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(jobData)
	pushMsg.Message.MessageID = uuid.New().String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	attributes := map[string]string{
		"coordinate_id": job.CoordinateID,
		"farm_id":       job.FarmID,
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}
	pushMsg.Message.Attributes = attributes

	p.logger.Info("[LocalPubSub] Publishing fetch job",
		slog.String("endpoint", p.endpoint),
		slog.String("coordinate_id", job.CoordinateID),
	)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.deliver(pushMsg, job)
	}()

	return nil
}

// deliver runs the attempt loop for one message.
func (p *localHTTPPublisher) deliver(pushMsg PubSubPushMessage, job *service.FetchJob) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.retryDelay

	attempt := 0
	_, err := backoff.Retry(p.rootCtx, func() (struct{}, error) {
		attempt++
		pushMsg.DeliveryAttempt = attempt

		if err := p.push(&pushMsg, job.RequestID); err != nil {
			p.logger.Warn("[LocalPubSub] Delivery attempt failed",
				slog.String("coordinate_id", job.CoordinateID),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return struct{}{}, err
		}

		return struct{}{}, nil
	}, backoff.WithBackOff(expo), backoff.WithMaxTries(uint(p.maxAttempts)))

	if err != nil {
		// Attempts exhausted (or shutdown). The coordinate keeps whatever
		// status the worker last wrote; there is no dead-letter topic here.
		p.logger.Error("[LocalPubSub] Fetch job dropped",
			slog.String("coordinate_id", job.CoordinateID),
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)

		return
	}

	p.logger.Info("[LocalPubSub] Fetch job delivered",
		slog.String("coordinate_id", job.CoordinateID),
		slog.Int("attempts", attempt),
	)
}

// push performs one HTTP POST to the worker endpoint.
func (p *localHTTPPublisher) push(pushMsg *PubSubPushMessage, requestID string) error {
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return backoff.Permanent(errors.WithStack(err))
	}

	req, err := http.NewRequestWithContext(p.rootCtx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close stops in-flight deliveries and waits for their goroutines.
func (p *localHTTPPublisher) Close() error {
	p.cancel()
	p.wg.Wait()

	return nil
}
