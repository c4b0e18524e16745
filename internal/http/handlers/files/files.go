// Package files implements the HTTP handlers for the file proxy endpoints.
package files

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/r2box/media-service/internal/services/media"
	"github.com/r2box/media-service/internal/types"
	"github.com/r2box/media-service/internal/upload"
	"github.com/r2box/media-service/internal/utils/response"
)

type Handlers struct {
	svc      *media.Service
	validate *validator.Validate
}

// NewHandlers creates the handler set over the media service.
func NewHandlers(svc *media.Service) *Handlers {
	return &Handlers{
		svc:      svc,
		validate: validator.New(),
	}
}

// Upload handles the image upload endpoint
// @Summary Upload an image
// @Description Accepts a multipart image, re-encodes it as JPEG at fixed quality and stores it under images/
// @Tags files
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} types.UploadResponse "Upload successful"
// @Failure 400 {object} response.ErrorBody "No file uploaded"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /api/upload [post]
func (h *Handlers) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, file, err := upload.ParseForm(r)
		if err != nil {
			slog.Error("form parse failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Form parsing failed"))
			return
		}
		defer file.Remove()

		if file == nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Err("No file uploaded"))
			return
		}

		key, err := h.svc.UploadImage(r.Context(), file.Path)
		if err != nil {
			slog.Error("image upload failed",
				slog.String("filename", file.Filename),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Upload failed"))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.UploadResponse{
			Message: "Upload successful",
			Key:     key,
		})
	}
}

// VideoUpload handles the generic (video) upload endpoint
// @Summary Upload a video
// @Description Streams a multipart file into the caller-supplied bucket under videos/, keeping the declared content type
// @Tags files
// @Accept mpfd
// @Produce json
// @Param file formData file true "Video file"
// @Param bucket formData string true "Destination bucket (form field or query parameter)"
// @Success 200 {object} types.UploadResponse "Video upload successful"
// @Failure 400 {object} response.ErrorBody "Missing bucket or file"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /api/videoUpload [post]
func (h *Handlers) VideoUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, file, err := upload.ParseForm(r)
		if err != nil {
			slog.Error("form parse failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Form parsing failed"))
			return
		}
		defer file.Remove()

		req := types.VideoUploadRequest{Bucket: fields["bucket"]}
		if req.Bucket == "" {
			req.Bucket = r.URL.Query().Get("bucket")
		}
		if err := h.validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Err("Bucket name is required"))
			return
		}

		if file == nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Err("No file uploaded"))
			return
		}

		key, err := h.svc.UploadVideo(r.Context(), req.Bucket, file.Path, file.Filename, file.ContentType)
		if err != nil {
			slog.Error("video upload failed",
				slog.String("bucket", req.Bucket),
				slog.String("filename", file.Filename),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Upload failed"))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.UploadResponse{
			Message: "Video upload successful",
			Key:     key,
		})
	}
}

// SignedURL handles the signed-URL endpoint
// @Summary Get a signed URL
// @Description Returns a presigned GET URL for the given key, valid for the configured TTL
// @Tags files
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} types.SignedURLResponse "Signed URL"
// @Failure 400 {object} response.ErrorBody "Missing key param"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /api/image [get]
func (h *Handlers) SignedURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := types.KeyRequest{Key: r.URL.Query().Get("key")}
		if err := h.validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Err("Missing key param"))
			return
		}

		signedURL, err := h.svc.SignedURL(r.Context(), req.Key)
		if err != nil {
			slog.Error("presign failed",
				slog.String("key", req.Key),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Failed to generate signed URL"))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.SignedURLResponse{SignedURL: signedURL})
	}
}

// List handles the media listing endpoint
// @Summary List media
// @Description Lists up to the configured cap of objects under images/, each with a presigned URL
// @Tags files
// @Produce json
// @Success 200 {array} types.MediaEntry "Media entries"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /api/media [get]
func (h *Handlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.svc.List(r.Context())
		if err != nil {
			slog.Error("list media failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Could not list media"))
			return
		}

		response.WriteJSON(w, http.StatusOK, entries)
	}
}

// Delete handles the delete endpoint
// @Summary Delete a file
// @Description Removes the object at the given key; deleting a missing key succeeds
// @Tags files
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} types.MessageResponse "File deleted successfully"
// @Failure 400 {object} response.ErrorBody "Missing key parameter"
// @Failure 500 {object} response.ErrorBody "Internal server error"
// @Router /api/delete [delete]
func (h *Handlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := types.KeyRequest{Key: r.URL.Query().Get("key")}
		if err := h.validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Err("Missing key parameter"))
			return
		}

		if err := h.svc.Delete(r.Context(), req.Key); err != nil {
			slog.Error("delete failed",
				slog.String("key", req.Key),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Err("Failed to delete file"))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.MessageResponse{Message: "File deleted successfully"})
	}
}
