package types

// KeyRequest carries the object key taken from the query string of the
// delete and sign endpoints.
type KeyRequest struct {
	Key string `validate:"required"`
}

// VideoUploadRequest carries the caller-supplied bucket for the generic
// upload path. The bucket may arrive as a form field or a query parameter.
type VideoUploadRequest struct {
	Bucket string `validate:"required"`
}

// UploadResponse is returned by both upload endpoints.
type UploadResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// MessageResponse is returned by the delete endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignedURLResponse is returned by the sign endpoint.
type SignedURLResponse struct {
	SignedURL string `json:"signedUrl"`
}

// MediaEntry is one element of the list endpoint's response. Title is the
// final path segment of Key; SignedURL is a presigned GET URL for the object.
type MediaEntry struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	SignedURL string `json:"signedUrl"`
}
