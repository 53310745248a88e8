// Package storage provides the blob-bucket implementation of photo storage.
package storage

import (
	"context"

	"placehub/config"
	"placehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const keyPrefix = "places/photos"

// photoBucket stores optimized photos as JPEG blobs in a gocloud bucket.
// The default backend is a fileblob bucket over the configured directory;
// keys look like "places/photos/<uuid>.jpg".
type photoBucket struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the photo bucket, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewPhotoBucket is the constructor for photoBucket. The bucket is closed on
// shutdown.
func NewPhotoBucket(params Params) (service.PhotoStorage, error) {
	store, err := openPhotoBucket(params.Config)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.bucket.Close()
		},
	})

	return store, nil
}

func openPhotoBucket(cfg *config.Config) (*photoBucket, error) {
	dir := "var/photos"
	if cfg.Photo != nil && cfg.Photo.StorageDir != "" {
		dir = cfg.Photo.StorageDir
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	return &photoBucket{bucket: bucket}, nil
}

// Save writes the bytes and returns the storage key of the new asset.
func (s *photoBucket) Save(ctx context.Context, data []byte) (string, error) {
	key := keyPrefix + "/" + uuid.NewString() + ".jpg"
	opts := &blob.WriterOptions{ContentType: "image/jpeg"}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write photo blob")
	}

	return key, nil
}

// Delete removes a stored asset. Deleting a missing key is not an error.
func (s *photoBucket) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete photo blob")
	}

	return nil
}
