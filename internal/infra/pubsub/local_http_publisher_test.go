package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cropsat/config"
	"cropsat/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushRecorder struct {
	mu       sync.Mutex
	attempts []int
	jobs     []service.FetchJob
	statuses []int // status to answer per request, last one repeats
}

func (r *pushRecorder) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)

		var pushMsg PubSubPushMessage
		require.NoError(t, json.Unmarshal(body, &pushMsg))

		data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		require.NoError(t, err)

		var job service.FetchJob
		require.NoError(t, json.Unmarshal(data, &job))

		r.mu.Lock()
		r.attempts = append(r.attempts, pushMsg.DeliveryAttempt)
		r.jobs = append(r.jobs, job)
		idx := len(r.attempts) - 1
		if idx >= len(r.statuses) {
			idx = len(r.statuses) - 1
		}
		status := r.statuses[idx]
		r.mu.Unlock()

		w.WriteHeader(status)
	}
}

func (r *pushRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.attempts)
}

func newLocalPublisher(endpoint string, maxAttempts int) service.JobPublisher {
	cfg := &config.PubSubConfig{
		Provider:      "local",
		LocalEndpoint: endpoint,
		MaxAttempts:   maxAttempts,
		RetryDelay:    time.Millisecond,
	}

	return NewLocalHTTPPublisher(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLocalHTTPPublisher_DeliversJob(t *testing.T) {
	recorder := &pushRecorder{statuses: []int{http.StatusOK}}
	server := httptest.NewServer(recorder.handler(t))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, 5)

	job := &service.FetchJob{
		RequestID:    "req-1",
		CoordinateID: "c-1",
		FarmID:       "f-1",
		Lat:          23.0,
		Lng:          87.0,
	}
	require.NoError(t, publisher.PublishFetchJob(context.Background(), job))

	require.Eventually(t, func() bool { return recorder.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, publisher.Close())

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, []int{1}, recorder.attempts)
	assert.Equal(t, "c-1", recorder.jobs[0].CoordinateID)
	assert.Equal(t, "f-1", recorder.jobs[0].FarmID)
	assert.InDelta(t, 23.0, recorder.jobs[0].Lat, 1e-9)
}

func TestLocalHTTPPublisher_RetriesUntilSuccess(t *testing.T) {
	recorder := &pushRecorder{statuses: []int{
		http.StatusServiceUnavailable,
		http.StatusServiceUnavailable,
		http.StatusOK,
	}}
	server := httptest.NewServer(recorder.handler(t))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, 5)

	require.NoError(t, publisher.PublishFetchJob(context.Background(), &service.FetchJob{CoordinateID: "c-2", FarmID: "f-2"}))

	require.Eventually(t, func() bool { return recorder.count() == 3 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, publisher.Close())

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, recorder.attempts)
}

func TestLocalHTTPPublisher_DropsAfterMaxAttempts(t *testing.T) {
	recorder := &pushRecorder{statuses: []int{http.StatusServiceUnavailable}}
	server := httptest.NewServer(recorder.handler(t))
	defer server.Close()

	publisher := newLocalPublisher(server.URL, 3)

	require.NoError(t, publisher.PublishFetchJob(context.Background(), &service.FetchJob{CoordinateID: "c-3", FarmID: "f-3"}))

	require.Eventually(t, func() bool { return recorder.count() == 3 }, 2*time.Second, 10*time.Millisecond)

	// The attempt budget is spent; no further deliveries may happen.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 3, recorder.count())

	require.NoError(t, publisher.Close())
}
