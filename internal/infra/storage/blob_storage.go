// Package storage provides durable key-value storage on top of gocloud blob buckets.
package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStorage stores each key as one blob object.
type BlobStorage struct {
	bucket *blob.Bucket
}

var _ service.KeyValueStorage = (*BlobStorage)(nil)

// New opens the bucket named by location.storageUrl and closes it on stop.
func New(params Params) (service.KeyValueStorage, error) {
	url := params.Config.LocationOrDefault().StorageURL

	bucket, err := blob.OpenBucket(context.Background(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage bucket %q", url)
	}

	params.Logger.Info("Opened key-value storage", slog.String("url", url))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket) *BlobStorage {
	return &BlobStorage{bucket: bucket}
}

func (s *BlobStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %q", key)
	}

	return string(data), true, nil
}

func (s *BlobStorage) SetItem(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}
	if err := s.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return errors.Wrapf(err, "failed to write %q", key)
	}

	return nil
}

func (s *BlobStorage) RemoveItem(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %q", key)
	}

	return nil
}
