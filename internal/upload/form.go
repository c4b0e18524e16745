// Package upload handles multipart form decoding and the lifecycle of the
// temporary files it materializes.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// TempPrefix marks temp files created by ParseForm so the sweeper can find
// orphans.
const TempPrefix = "upload-"

// fileField is the multipart field name carrying the uploaded file.
const fileField = "file"

// maxFormMemory bounds the non-file form parts held in memory; file parts
// spill to disk.
const maxFormMemory = 32 << 20

// File describes an uploaded file materialized to a temporary location. The
// original extension is preserved in Path so format sniffing by extension
// still works downstream.
type File struct {
	Path        string
	Filename    string
	ContentType string
	Size        int64
}

// Remove deletes the temporary file. Callers must invoke it on every exit
// path once parsing succeeded.
func (f *File) Remove() {
	if f != nil {
		os.Remove(f.Path)
	}
}

// ParseForm consumes the request body as a multipart form. Form fields are
// collected first-value-wins; the "file" part, if present, is written to a
// temp file. A missing file part is not an error: the caller decides whether
// it is required (returned File is nil). A malformed body is an error.
func ParseForm(r *http.Request) (map[string]string, *File, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	fields := make(map[string]string)
	for name, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	part, header, err := r.FormFile(fileField)
	if errors.Is(err, http.ErrMissingFile) {
		return fields, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read file part: %w", err)
	}
	defer part.Close()

	tmp, err := os.CreateTemp("", TempPrefix+"*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, nil, fmt.Errorf("create temp file: %w", err)
	}

	size, err := io.Copy(tmp, part)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return nil, nil, fmt.Errorf("write temp file: %w", err)
	}

	return fields, &File{
		Path:        tmp.Name(),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        size,
	}, nil
}
