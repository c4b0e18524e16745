package media

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test png: %v", err)
	}
	return path
}

func TestTranscodeJPEG(t *testing.T) {
	path := writeTestPNG(t)

	buf, err := transcodeJPEG(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Expected non-empty output buffer")
	}

	// Output must decode as a valid JPEG with the original dimensions.
	img, err := jpeg.Decode(buf)
	if err != nil {
		t.Fatalf("Output is not a decodable JPEG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Errorf("Expected 16x16 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestTranscodeJPEGCorruptInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := transcodeJPEG(path); err == nil {
		t.Fatal("Expected error for corrupt input, got nil")
	}
}

func TestTranscodeJPEGMissingFile(t *testing.T) {
	if _, err := transcodeJPEG(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}
