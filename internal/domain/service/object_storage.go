package service

import (
	"context"

	"cropsat/internal/errors"
)

// ErrObjectStorage is returned when a blob upload fails.
var ErrObjectStorage = errors.New("object storage: put failed")

// StoredObject is the result of a blob upload.
type StoredObject struct {
	Key      string // key within the bucket
	Location string // fully qualified storage location
}

// ObjectStorage defines the interface for the image blob store. Keys
// include a uniqueness suffix so a retried attempt never collides with a
// prior partial upload; orphaned blobs from failed attempts are not
// cleaned up.
type ObjectStorage interface {
	// Put uploads bytes under the given key. Failures wrap ErrObjectStorage.
	Put(ctx context.Context, key string, data []byte, contentType string) (*StoredObject, error)

	// Close releases the underlying bucket handle.
	Close() error
}
