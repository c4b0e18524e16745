package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// jpegQuality is the fixed lossy quality for re-encoded images.
	jpegQuality = 80

	imageExt        = ".jpg"
	jpegContentType = "image/jpeg"
)

// transcodeJPEG decodes the image file at path and re-encodes it as JPEG at
// the fixed quality, returning the encoded bytes in memory. Corrupt or
// unsupported input surfaces as an error; there is no retry.
func transcodeJPEG(path string) (*bytes.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &buf, nil
}
