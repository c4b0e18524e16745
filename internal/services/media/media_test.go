package media

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/r2box/media-service/internal/config"
	"github.com/r2box/media-service/internal/storage/storagetest"
)

func testService(fake *storagetest.Fake) *Service {
	return NewService(fake, config.Storage{
		Bucket:         "media",
		SignTTLSeconds: 3600,
		ListMaxKeys:    1000,
	})
}

func TestUploadImage(t *testing.T) {
	fake := storagetest.New()
	svc := testService(fake)

	key, err := svc.UploadImage(context.Background(), writeTestPNG(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	re := regexp.MustCompile(`^images/` + uuidPattern + `\.jpg$`)
	if !re.MatchString(key) {
		t.Errorf("Unexpected key format: %q", key)
	}

	obj, ok := fake.Get("media", key)
	if !ok {
		t.Fatalf("Expected object stored under %q", key)
	}
	if obj.ContentType != "image/jpeg" {
		t.Errorf("Expected content type image/jpeg, got %q", obj.ContentType)
	}
	if _, err := jpeg.Decode(bytes.NewReader(obj.Data)); err != nil {
		t.Errorf("Stored bytes are not a decodable JPEG: %v", err)
	}
}

func TestUploadImageCorruptInput(t *testing.T) {
	fake := storagetest.New()
	svc := testService(fake)

	path := filepath.Join(t.TempDir(), "bad.jpg")
	if err := os.WriteFile(path, []byte("nope"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := svc.UploadImage(context.Background(), path); err == nil {
		t.Fatal("Expected transcode error, got nil")
	}
	if keys := fake.Keys("media"); len(keys) != 0 {
		t.Errorf("Expected nothing persisted on failure, got %v", keys)
	}
}

func TestUploadImagePutFailure(t *testing.T) {
	fake := storagetest.New()
	fake.PutErr = errors.New("connection reset")
	svc := testService(fake)

	if _, err := svc.UploadImage(context.Background(), writeTestPNG(t)); err == nil {
		t.Fatal("Expected storage error, got nil")
	}
}

func TestUploadVideo(t *testing.T) {
	fake := storagetest.New()
	svc := testService(fake)

	path := filepath.Join(t.TempDir(), "upload.tmp")
	if err := os.WriteFile(path, []byte("video-bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	key, err := svc.UploadVideo(context.Background(), "test-bucket", path, "clip.mp4", "video/mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	re := regexp.MustCompile(`^videos/` + uuidPattern + `-clip\.mp4$`)
	if !re.MatchString(key) {
		t.Errorf("Unexpected key format: %q", key)
	}

	obj, ok := fake.Get("test-bucket", key)
	if !ok {
		t.Fatalf("Expected object stored under %q in test-bucket", key)
	}
	if obj.ContentType != "video/mp4" {
		t.Errorf("Expected declared content type kept, got %q", obj.ContentType)
	}
	if string(obj.Data) != "video-bytes" {
		t.Errorf("Stored bytes differ from upload: %q", obj.Data)
	}
}

func TestUploadVideoDefaultContentType(t *testing.T) {
	fake := storagetest.New()
	svc := testService(fake)

	path := filepath.Join(t.TempDir(), "upload.tmp")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	key, err := svc.UploadVideo(context.Background(), "b", path, "f.bin", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	obj, _ := fake.Get("b", key)
	if obj.ContentType != "application/octet-stream" {
		t.Errorf("Expected octet-stream fallback, got %q", obj.ContentType)
	}
}

func TestSignedURLExpiry(t *testing.T) {
	fake := storagetest.New()
	svc := testService(fake)

	u, err := svc.SignedURL(context.Background(), "images/a.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if u == "" {
		t.Fatal("Expected non-empty URL")
	}
	if fake.LastSignExpiry != time.Hour {
		t.Errorf("Expected 1h expiry, got %s", fake.LastSignExpiry)
	}
}

func TestListCapAndTitles(t *testing.T) {
	fake := storagetest.New()
	for i := 0; i < 5; i++ {
		fake.Seed("media", "images/"+strings.Repeat("a", i+1)+".jpg", "image/jpeg", []byte("x"))
	}
	fake.Seed("media", "videos/skip.mp4", "video/mp4", []byte("x"))

	svc := NewService(fake, config.Storage{Bucket: "media", SignTTLSeconds: 3600, ListMaxKeys: 3})

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected cap of 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Key, "images/") {
			t.Errorf("Entry outside images/ prefix: %q", e.Key)
		}
		if e.Title != strings.TrimPrefix(e.Key, "images/") {
			t.Errorf("Expected title %q, got %q", strings.TrimPrefix(e.Key, "images/"), e.Title)
		}
		if !strings.Contains(e.SignedURL, e.Key) {
			t.Errorf("Expected signed URL for %q, got %q", e.Key, e.SignedURL)
		}
	}
}

func TestDeleteIdempotent(t *testing.T) {
	fake := storagetest.New()
	fake.Seed("media", "images/a.jpg", "image/jpeg", []byte("x"))
	svc := testService(fake)

	if err := svc.Delete(context.Background(), "images/a.jpg"); err != nil {
		t.Fatalf("Unexpected error on first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "images/a.jpg"); err != nil {
		t.Fatalf("Expected second delete to succeed, got %v", err)
	}
}
