// Package media implements the upload pipeline and the storage-facing
// operations behind the file endpoints.
package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/r2box/media-service/internal/config"
	"github.com/r2box/media-service/internal/storage"
	"github.com/r2box/media-service/internal/types"
)

const (
	imagePrefix = "images/"
	videoPrefix = "videos/"
)

type Service struct {
	store   storage.ObjectStorage
	bucket  string
	signTTL time.Duration
	listMax int
}

// NewService wraps store with the configured default bucket, presign TTL and
// list cap. The service holds no per-request state and is safe for concurrent
// use.
func NewService(store storage.ObjectStorage, cfg config.Storage) *Service {
	return &Service{
		store:   store,
		bucket:  cfg.Bucket,
		signTTL: cfg.SignTTL(),
		listMax: cfg.ListMaxKeys,
	}
}

// UploadImage re-encodes the image at srcPath to JPEG at fixed quality and
// stores the result under a fresh images/ key in the default bucket. Returns
// the object key.
func (s *Service) UploadImage(ctx context.Context, srcPath string) (string, error) {
	buf, err := transcodeJPEG(srcPath)
	if err != nil {
		return "", fmt.Errorf("transcode image: %w", err)
	}

	key := imageKey()
	if err := s.store.Put(ctx, s.bucket, key, buf, int64(buf.Len()), jpegContentType); err != nil {
		return "", err
	}

	return key, nil
}

// UploadVideo streams the file at srcPath into the caller-supplied bucket
// under a fresh videos/ key, keeping the declared content type. The body is
// streamed, not buffered, so arbitrarily large files are fine.
func (s *Service) UploadVideo(ctx context.Context, bucket, srcPath, originalName, contentType string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", srcPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat upload %q: %w", srcPath, err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := videoKey(originalName)
	if err := s.store.Put(ctx, bucket, key, f, info.Size(), contentType); err != nil {
		return "", err
	}

	return key, nil
}

// SignedURL returns a presigned GET URL for key, valid for the configured
// TTL. Signing does not verify that the object exists.
func (s *Service) SignedURL(ctx context.Context, key string) (string, error) {
	return s.store.PresignedGet(ctx, s.bucket, key, s.signTTL)
}

// List returns up to the configured cap of objects under the images/ prefix,
// each with a display title (last path segment) and a presigned GET URL.
func (s *Service) List(ctx context.Context) ([]types.MediaEntry, error) {
	objects, err := s.store.List(ctx, s.bucket, imagePrefix, s.listMax)
	if err != nil {
		return nil, err
	}

	entries := make([]types.MediaEntry, 0, len(objects))
	for _, obj := range objects {
		signedURL, err := s.store.PresignedGet(ctx, s.bucket, obj.Key, s.signTTL)
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.MediaEntry{
			Key:       obj.Key,
			Title:     path.Base(obj.Key),
			SignedURL: signedURL,
		})
	}

	return entries, nil
}

// Delete removes key from the default bucket. Deleting a missing key
// succeeds.
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.bucket, key)
}
