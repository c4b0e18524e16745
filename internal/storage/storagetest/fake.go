// Package storagetest provides an in-memory ObjectStorage for handler and
// service tests.
package storagetest

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/r2box/media-service/internal/storage"
)

// Object is one stored blob.
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Data        []byte
}

// Fake is an in-memory storage.ObjectStorage. Set the *Err fields to force
// failures. Safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	objects map[string]Object

	PutErr    error
	SignErr   error
	ListErr   error
	DeleteErr error

	// LastSignExpiry records the expiry passed to the most recent
	// PresignedGet call.
	LastSignExpiry time.Duration
	Deletes        int
}

func New() *Fake {
	return &Fake{objects: make(map[string]Object)}
}

func (f *Fake) Put(_ context.Context, bucket, key string, reader io.Reader, _ int64, contentType string) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = Object{Bucket: bucket, Key: key, ContentType: contentType, Data: data}
	return nil
}

func (f *Fake) PresignedGet(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if f.SignErr != nil {
		return "", f.SignErr
	}
	f.mu.Lock()
	f.LastSignExpiry = expiry
	f.mu.Unlock()
	return fmt.Sprintf("https://store.example/%s/%s?X-Amz-Expires=%d", bucket, key, int(expiry.Seconds())), nil
}

func (f *Fake) List(_ context.Context, bucket, prefix string, max int) ([]storage.ObjectInfo, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var infos []storage.ObjectInfo
	for _, obj := range f.objects {
		if obj.Bucket == bucket && strings.HasPrefix(obj.Key, prefix) {
			infos = append(infos, storage.ObjectInfo{
				Key:         obj.Key,
				Size:        int64(len(obj.Data)),
				ContentType: obj.ContentType,
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	if len(infos) > max {
		infos = infos[:max]
	}
	return infos, nil
}

func (f *Fake) Delete(_ context.Context, bucket, key string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, bucket+"/"+key)
	f.Deletes++
	return nil
}

func (f *Fake) EnsureBucket(context.Context, string) error { return nil }

// Get returns the stored object, if any.
func (f *Fake) Get(bucket, key string) (Object, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[bucket+"/"+key]
	return obj, ok
}

// Keys returns all keys in bucket, sorted.
func (f *Fake) Keys(bucket string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for _, obj := range f.objects {
		if obj.Bucket == bucket {
			keys = append(keys, obj.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Seed stores an object directly.
func (f *Fake) Seed(bucket, key, contentType string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = Object{Bucket: bucket, Key: key, ContentType: contentType, Data: data}
}
