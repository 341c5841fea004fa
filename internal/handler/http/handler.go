package http

import (
	"time"

	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout time.Duration
	metricsPath    string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: cfg.Server.RequestTimeout,
		metricsPath:    cfg.Metrics.Path,
		logger:         logger,
	}
}
