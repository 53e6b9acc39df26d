package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests that no mux pattern matched, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that records request count and latency per
// route. It must sit directly around the http.ServeMux, which fills in
// r.Pattern on the request it is given.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
