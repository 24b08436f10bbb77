// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"

	"cropsat/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitCoordinateInput represents one coordinate submission.
type SubmitCoordinateInput struct {
	ClientEventID string   `json:"client_event_id"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Accuracy      *float64 `json:"accuracy,omitempty"`
}

// SyncEventInput is one client-buffered event in an offline sync batch.
// Unlike SubmitCoordinateInput the farm is carried per event.
type SyncEventInput struct {
	FarmID        uuid.UUID `json:"farm_id"`
	ClientEventID string    `json:"client_event_id"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Accuracy      *float64  `json:"accuracy,omitempty"`
}

// Per-event outcome tags for offline sync.
const (
	SyncResultCreated = "created"
	SyncResultExists  = "exists"
	SyncResultError   = "error"
)

// SyncEventResult reports the outcome of one sync event. A batch never
// aborts on a single element; every input yields exactly one result.
type SyncEventResult struct {
	ClientEventID string             `json:"client_event_id"`
	Status        string             `json:"status"`
	Coordinate    *entity.Coordinate `json:"coordinate,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// CoordinateStatusResult is the read-path view: the coordinate plus its
// linked image, if any.
type CoordinateStatusResult struct {
	Coordinate *entity.Coordinate `json:"coordinate"`
	Image      *entity.Image      `json:"image,omitempty"`
}

// IngestionUsecase admits coordinate submissions into the acquisition
// pipeline and exposes the status read path.
type IngestionUsecase interface {
	// SubmitCoordinate validates the submission, enforces the
	// (farmID, clientEventID) idempotency key and enqueues exactly one
	// fetch job for a new coordinate. A repeated submission returns the
	// existing coordinate unchanged without enqueueing.
	SubmitCoordinate(ctx context.Context, ownerID, farmID uuid.UUID, input *SubmitCoordinateInput) (*entity.Coordinate, error)

	// SyncOfflineEvents applies submission logic per event, collecting a
	// per-event result without aborting the batch.
	SyncOfflineEvents(ctx context.Context, ownerID uuid.UUID, events []SyncEventInput) []SyncEventResult

	// GetCoordinateStatus returns the coordinate with its linked image.
	// Ownership of the parent farm is enforced.
	GetCoordinateStatus(ctx context.Context, ownerID, coordinateID uuid.UUID) (*CoordinateStatusResult, error)
}
