package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no registered pattern, keeping
// the route label bounded.
const unmatchedRoute = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveHTTPRequest(route, r.Method, mw.statusCode(), time.Since(start))
	})
}
