// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider
// (Cloudflare R2, MinIO, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes one stored object returned by List.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ObjectStorage is the set of operations the handlers need from the store.
// Implementations must be safe for concurrent use; they carry no per-request
// state.
type ObjectStorage interface {
	// Put streams reader to the store under key. size must be the exact byte
	// count (-1 only if genuinely unknown, which forces client-side buffering).
	Put(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error

	// PresignedGet returns a URL granting time-bounded unauthenticated read
	// access to key. Signing never verifies that the object exists.
	PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// List returns at most max objects under prefix. Results beyond the cap
	// are silently omitted.
	List(ctx context.Context, bucket, prefix string, max int) ([]ObjectInfo, error)

	// Delete removes the object at key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, bucket, key string) error

	// EnsureBucket creates bucket if it does not exist.
	EnsureBucket(ctx context.Context, bucket string) error
}
