package http

import (
	"net/http"

	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's X-Trace-ID or generates one. The id is
// echoed in the response, added to the request logger and stored in the
// context so it is forwarded on platform calls.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
