package middleware

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/tusharoffice40/Whole-X/pkg/metrics"
)

// Metrics records request duration, count, and in-flight gauge for every
// request, labeled by the chi route pattern rather than the raw path.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.RequestInFlight.Inc()
			defer metrics.RequestInFlight.Dec()

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			path := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if pattern := routeCtx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			metrics.Observe(r.Method, path, rec.status, time.Since(start))
		})
	}
}
