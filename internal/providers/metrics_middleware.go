package providers

import (
	"net/http"
	"time"
)

// calcEndpoints are the label values the request metrics may carry.
// Anything else collapses to "other" so arbitrary request paths cannot
// grow the label space.
var calcEndpoints = map[string]struct{}{
	"/difference":    {},
	"/add":           {},
	"/subtract":      {},
	"/history":       {},
	"/history/clear": {},
}

func normalizeEndpoint(path string) string {
	if _, ok := calcEndpoints[path]; ok {
		return path
	}
	return "other"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func MetricsMiddleware(metrics MetricsProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		endpoint := normalizeEndpoint(r.URL.Path)
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, duration)
	})
}
