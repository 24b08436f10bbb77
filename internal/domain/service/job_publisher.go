// Package service defines the interfaces for external capabilities the
// core depends on: the job queue, the imagery provider and blob storage.
package service

import (
	"context"
)

// FetchJob is the queue payload instructing the worker to fetch imagery
// for one coordinate. It snapshots everything needed to redo the fetch
// without re-reading the coordinate store before each attempt.
type FetchJob struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	CoordinateID string  `json:"coordinate_id"`
	FarmID       string  `json:"farm_id"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// JobPublisher defines the interface for enqueueing fetch jobs onto the
// work queue. Delivery is at-least-once per enqueue; retry and backoff
// are queue-level concerns configured per provider.
type JobPublisher interface {
	// PublishFetchJob enqueues a fetch job for async processing.
	PublishFetchJob(ctx context.Context, job *FetchJob) error

	// Close releases any resources held by the publisher.
	Close() error
}
