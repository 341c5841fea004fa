package http

import (
	"context"
	"net/http"
)

// withRequestTimeout bounds the request context by requestTimeout. It writes
// nothing itself: handlers check the deadline after the service call and
// answer 504 through writeIfTimedOut.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
