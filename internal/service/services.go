package service

import (
	"fmt"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
)

type Services struct {
	ProvisioningService ProvisioningService
	VerificationService VerificationService
	AppInfoService      AppInfoService
}

func NewServices(api adapter.AssetAPI, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	provisioningService := NewProvisioningValidationService(m, logger).
		Wrap(NewProvisioningService(api, m, logger))

	return &Services{
		ProvisioningService: provisioningService,
		VerificationService: NewVerificationService(api, logger),
		AppInfoService:      appInfoService,
	}, nil
}
