package media

import (
	"path/filepath"

	"github.com/google/uuid"
)

// imageKey generates a unique object key for a transcoded image. The random
// identifier makes collisions negligible; no existence check is performed.
func imageKey() string {
	return imagePrefix + uuid.New().String() + imageExt
}

// videoKey generates a unique object key for a generic upload, keeping the
// original filename (base name only) for readability.
func videoKey(originalName string) string {
	return videoPrefix + uuid.New().String() + "-" + filepath.Base(originalName)
}
