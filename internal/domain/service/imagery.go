package service

import (
	"context"
	"time"

	"cropsat/internal/domain/entity"
	"cropsat/internal/errors"
)

// Error classes for the imagery integration. The acquisition worker maps
// both to job-attempt-level retries.
var (
	// ErrImageryAuth is returned when access token acquisition fails.
	ErrImageryAuth = errors.New("imagery auth: token acquisition failed")
	// ErrImageryProvider is returned on a non-success imagery response.
	ErrImageryProvider = errors.New("imagery provider: fetch failed")
)

// ImageRequest describes one imagery fetch: the region of interest, the
// acquisition time window and the cloud coverage ceiling in percent.
type ImageRequest struct {
	BBox             entity.BoundingBox
	From             time.Time
	To               time.Time
	MaxCloudCoverage int
}

// ImageryProvider defines the interface for the external satellite
// imagery service. Both calls are network calls and must honor the
// context deadline.
type ImageryProvider interface {
	// GetToken acquires an access token from the imagery auth provider.
	// Failures wrap ErrImageryAuth.
	GetToken(ctx context.Context) (string, error)

	// FetchImage requests the image for the given region and window and
	// returns the raw binary response. Failures wrap ErrImageryProvider.
	FetchImage(ctx context.Context, token string, req ImageRequest) ([]byte, error)
}
