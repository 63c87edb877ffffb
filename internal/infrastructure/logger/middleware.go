package logger

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Logger is a middleware that injects a zerolog.Logger into the context,
// and logs the request with method, path, status, and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			remoteIP = r.RemoteAddr
		}
		reqID := middleware.GetReqID(r.Context())
		if reqID == "" {
			reqID = uuid.NewString()
		}

		l := log.With().
			Str("request_id", reqID).
			Str("remote_ip", remoteIP).
			Str("method", r.Method).
			Str("url", r.RequestURI).
			Logger()

		r = r.WithContext(l.WithContext(r.Context()))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// static assets and probes are noise at info level
		event := l.Info()
		if ww.Status() < http.StatusBadRequest && isQuietPath(r.URL.Path) {
			event = l.Debug()
		}
		event.
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

func isQuietPath(path string) bool {
	switch path {
	case "/healthz", "/metrics", "/favicon.ico":
		return true
	}
	return len(path) > 8 && path[:8] == "/static/"
}
