// Package assets stores generated binary assets in a gocloud.dev blob bucket.
package assets

import (
	"context"
	"log/slog"

	"cellcontrol/config"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the dependencies of the blob asset store
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by assets.bucketUrl and closes it on shutdown.
func New(params Params) (service.AssetStore, error) {
	bucketURL := "mem://"
	if params.Config.Assets != nil && params.Config.Assets.BucketURL != "" {
		bucketURL = params.Config.Assets.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open asset bucket %s", bucketURL)
	}
	params.Logger.Info("Asset bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket) service.AssetStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrAssetNotFound
		}

		return nil, errors.Wrapf(err, "failed to read asset %s", key)
	}

	return data, nil
}

func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write asset %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete asset %s", key)
	}

	return nil
}
