package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/app-store-insights-api/pkg/telemetry"
)

// MetricsMiddleware registra contagem e latência das requisições no Prometheus
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			// Rotas inexistentes ficam num único label para não explodir a cardinalidade
			path := r.URL.Path
			if lrw.statusCode == http.StatusNotFound || lrw.statusCode == http.StatusMethodNotAllowed {
				path = "unmatched"
			}

			telemetry.HTTPRequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(lrw.statusCode)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(path, r.Method).Observe(time.Since(startTime).Seconds())
		})
	}
}
