package httpx

import (
	"net/http"

	"booky/internal/logging"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags each request with an id, echoes it in the
// response and attaches a logger carrying it to the request context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := ContextWithRequestID(r.Context(), requestID)
		logger := logging.FromContext(ctx).With().Str("request_id", requestID).Logger()
		ctx = logging.WithLogger(ctx, &logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
