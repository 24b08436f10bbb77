// Package storage implements the image blob store on top of gocloud.dev
// portable buckets. The configured bucket URL selects the driver: s3://,
// gs:// or file:// for development.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"cropsat/config"
	"cropsat/internal/domain/lifecycle"
	"cropsat/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers selectable via URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type bucketStorage struct {
	bucket    *blob.Bucket
	bucketURL string
	logger    *slog.Logger
}

// Params holds dependencies for the bucket storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	store := &bucketStorage{
		bucket:    bucket,
		bucketURL: cfg.BucketURL,
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return store, nil
}

// NewWithBucket wires an already-open bucket; used by tests.
func NewWithBucket(bucket *blob.Bucket, bucketURL string, logger *slog.Logger) service.ObjectStorage {
	return &bucketStorage{
		bucket:    bucket,
		bucketURL: bucketURL,
		logger:    logger,
	}
}

// Put uploads bytes under the given key.
func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*service.StoredObject, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return nil, errors.Wrapf(service.ErrObjectStorage, "write %s: %v", key, err)
	}

	s.logger.Debug("[Storage] Blob written",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return &service.StoredObject{
		Key:      key,
		Location: strings.TrimSuffix(s.bucketURL, "/") + "/" + key,
	}, nil
}

// Close releases the underlying bucket handle.
func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
