package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger emits one structured line per request and attaches a
// request-scoped logger to the context so downstream code logs with the
// request id attached.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		reqLogger := log.With().Str("requestId", GetRequestID(r.Context())).Logger()
		ctx := reqLogger.WithContext(r.Context())

		next.ServeHTTP(recorder, r.WithContext(ctx))

		reqLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Int64("durationMs", time.Since(start).Milliseconds()).
			Msg("request")
	})
}
