package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the fixed error envelope: callers only ever see {"error": …}.
type ErrorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func Err(message string) ErrorBody {
	return ErrorBody{Error: message}
}
