package handler

import (
	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/handler/http"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
