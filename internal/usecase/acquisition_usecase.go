package usecase

import (
	"context"

	"cropsat/internal/domain/service"

	"github.com/google/uuid"
)

// AcquisitionResult reports a successfully processed fetch job.
type AcquisitionResult struct {
	ImageID uuid.UUID
}

// AcquisitionUsecase is the pipeline engine driven by the job queue's
// dispatch loop. HandleFetchJob runs the multi-step external workflow
// (status transition, token, imagery fetch, blob upload, image record,
// post-processing) and owns the coordinate status state machine.
type AcquisitionUsecase interface {
	// HandleFetchJob processes one job. On any pipeline failure the
	// coordinate is transitioned to failed and the error is returned so
	// the queue's attempt counting decides whether to redeliver.
	HandleFetchJob(ctx context.Context, job *service.FetchJob) (*AcquisitionResult, error)
}
