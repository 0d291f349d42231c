// Package storage keeps uploaded images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// URL openers for file://, gs:// and s3:// bucket URLs.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// MediaPathPrefix is the route that serves objects when no public URL is configured.
const MediaPathPrefix = "/media/"

const cacheControl = "public, max-age=31536000, immutable"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStorage struct {
	bucket    *blob.Bucket
	publicURL string
}

// New opens the configured bucket. Without a storage section every call fails with
// ErrStorageNotConfigured.
func New(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Warn("Blob storage is not configured, uploads are disabled")

		return &bucketStorage{}, nil
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, publicBase(params.Config)), nil
}

// NewBucketStorage wraps an open bucket. Object URLs are publicURL joined with the key.
func NewBucketStorage(bucket *blob.Bucket, publicURL string) service.BlobStorage {
	return &bucketStorage{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

// publicBase prefers storage.publicUrl, otherwise objects are served by this process under /media/.
func publicBase(cfg *config.Config) string {
	if cfg.Storage.PublicURL != "" {
		return cfg.Storage.PublicURL
	}

	return strings.TrimRight(cfg.HTTP.PublicBaseURL, "/") + strings.TrimRight(MediaPathPrefix, "/")
}

func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.bucket == nil {
		return "", domainerrors.ErrStorageNotConfigured
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	}); err != nil {
		return "", domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	return s.publicURL + "/" + key, nil
}

func (s *bucketStorage) Get(ctx context.Context, key string) (*service.BlobObject, error) {
	if s.bucket == nil {
		return nil, domainerrors.ErrStorageNotConfigured
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return &service.BlobObject{Data: data, ContentType: reader.ContentType()}, nil
}

func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if s.bucket == nil {
		return domainerrors.ErrStorageNotConfigured
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
