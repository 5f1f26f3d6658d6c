package httpapi

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskboard/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an id, honoring one supplied
// by the caller, and echoes it back in the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			r.Header.Set(requestIDHeader, reqID)
		}
		w.Header().Set(requestIDHeader, reqID)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware records method, path, status and duration for every
// handled request.
func loggingMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info(r.Context(), "handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"duration", m.Duration,
				"req_id", r.Header.Get(requestIDHeader),
			)
		})
	}
}
