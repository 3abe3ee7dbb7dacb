package httpx

import (
	"encoding/json"
	"net/http"

	"booky/internal/logging"
)

// ErrorResponse is the body of every error reply, including the 200
// not-found replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// InternalError logs err against the request and replies with a generic 500.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	JSONError(w, http.StatusInternalServerError, "internal server error")
}
