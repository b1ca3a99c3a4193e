package middleware

import (
	"net/http"
	"time"

	"customer-feedback/pkg/metrics"
)

// Metrics records request latency labelled by the matched route pattern, so path
// parameters do not explode label cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			metrics.ObserveRequest(r.Method, routePattern(r), rec.status, time.Since(start))
		})
	}
}
