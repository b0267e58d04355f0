package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log line per request. Server errors are
// logged at error level and client errors at warn.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.Status()
		logger.FromRequest(r).WithLevel(accessLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(started)).
			Msg("request served")
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
