package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/gospelpath-backend/internal/metrics"
)

// unmatchedRoute labels requests no mux pattern matched, so unknown paths
// cannot inflate label cardinality.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that counts and times requests by method, mux
// route pattern and status code. It must wrap the ServeMux directly: the
// mux records the matched pattern on the request it is handed.
func Metrics(reg *metrics.Registry) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			reg.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			reg.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
