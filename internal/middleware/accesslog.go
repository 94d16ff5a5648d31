// internal/middleware/accesslog.go
//
// Structured access logging.
//
// Context
// -------
// One INFO line per request via the global zap logger: method, path, status,
// duration, request ID, parsed User-Agent, and (when a GeoIP database is
// configured) the caller's country code.  The UA and geo lookups are log
// enrichment only; failures degrade to empty fields, never to errors.

package middleware

import (
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/atelier/internal/geo"
	"github.com/yanizio/atelier/internal/ua"
)

// statusRecorder captures the response code for the log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per completed request.  A nil resolver disables
// the country field.
func AccessLog(resolver *geo.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			agent := ua.Parse(r.UserAgent())
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			zap.L().Info("request",
				zap.String("request_id", GetRequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote", host),
				zap.String("country", resolver.Country(host)),
				zap.String("browser", agent.Browser),
				zap.String("os", agent.OS),
				zap.String("device", agent.Device),
				zap.Bool("bot", agent.IsBot),
			)
		})
	}
}
