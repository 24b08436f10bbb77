// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CoordinateStatus is the lifecycle status of a submitted coordinate.
// The acquisition worker is the only writer after creation.
type CoordinateStatus string

const (
	// StatusQueued is the only initial status, set at submission time.
	StatusQueued CoordinateStatus = "queued"
	// StatusFetching means a worker has picked up the fetch job.
	StatusFetching CoordinateStatus = "fetching"
	// StatusFetched means imagery was fetched, uploaded and recorded.
	StatusFetched CoordinateStatus = "fetched"
	// StatusProcessed is the terminal success status.
	StatusProcessed CoordinateStatus = "processed"
	// StatusFailed is the terminal failure status.
	StatusFailed CoordinateStatus = "failed"
)

// IsTerminal reports whether no further transition happens without
// external intervention.
func (s CoordinateStatus) IsTerminal() bool {
	return s == StatusProcessed || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next respects the
// linear progression queued → fetching → fetched → processed, with
// failed reachable from fetching. A redelivered job may move failed back
// to fetching; status writes are last-writer-wins, so this is a
// documentation aid for tests rather than a lock.
func (s CoordinateStatus) CanTransitionTo(next CoordinateStatus) bool {
	switch s {
	case StatusQueued:
		return next == StatusFetching
	case StatusFetching:
		return next == StatusFetched || next == StatusFailed
	case StatusFetched:
		return next == StatusProcessed || next == StatusFailed
	case StatusFailed:
		// Only a redelivered job re-enters the pipeline.
		return next == StatusFetching
	default:
		return false
	}
}

// Coordinate is a georeferenced point submitted for imagery acquisition.
// The (FarmID, ClientEventID) pair is the idempotency key: resubmission
// returns the existing row and never enqueues a second job.
type Coordinate struct {
	ID             uuid.UUID        `json:"id"`
	FarmID         uuid.UUID        `json:"farm_id"`
	ClientEventID  string           `json:"client_event_id"`
	Lat            float64          `json:"lat"`
	Lng            float64          `json:"lng"`
	Accuracy       *float64         `json:"accuracy,omitempty"`
	Status         CoordinateStatus `json:"status"`
	FetchedImageID *uuid.UUID       `json:"fetched_image_id,omitempty"`
	ProcessedAt    *time.Time       `json:"processed_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
