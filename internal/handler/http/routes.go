package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxRequestBodySize))
		if h.requestTimeout > 0 {
			r.Use(h.withRequestTimeout)
		}
		r.Post("/verify-api-key", h.verifyAPIKey)
		r.Post("/create", h.createCreative)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/health", h.health)
	if h.metricsPath != "" && h.metrics != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
