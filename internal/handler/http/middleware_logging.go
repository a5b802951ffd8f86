package http

import (
	"net/http"
	"time"

	"github.com/jovanamartatilova/librareads/internal/logger"
)

// withLogging emits one structured access line per request. It runs after
// withTraceID so the trace id is already on the request logger; response
// status and size come from the wrapping responseWriter.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
