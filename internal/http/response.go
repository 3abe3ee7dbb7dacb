package http

import (
	"errors"
	"net/http"

	"booky/internal/httpx"
	"booky/internal/usecase"
)

// writeError maps a handler failure onto the public error shapes. Missing
// documents are reported with a 200 so existing clients keep working.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *usecase.NotFoundError
	var bad *badRequestError
	switch {
	case errors.As(err, &nf):
		httpx.JSONError(w, http.StatusOK, nf.Message())
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(w, http.StatusOK, "not found")
	case errors.As(err, &bad):
		httpx.JSONError(w, bad.status, bad.msg)
	default:
		httpx.InternalError(w, r, err)
	}
}
