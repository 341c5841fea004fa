package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-txt/internal/app"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/internal/validators"
	"github.com/MKhiriev/go-link-txt/models"
)

// ProvisioningValidationService trims and validates a request before any
// remote call is made.
type ProvisioningValidationService struct {
	inner     ProvisioningService
	validator validators.Validator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewProvisioningValidationService(m *metrics.Metrics, logger *logger.Logger) ProvisioningServiceWrapper {
	return &ProvisioningValidationService{
		validator: validators.NewProvisioningValidator(),
		metrics:   m,
		logger:    logger,
	}
}

func (v *ProvisioningValidationService) Provision(ctx context.Context, apiKey string, req models.ProvisionRequest) models.ProvisionResult {
	req = req.Trimmed()
	credentials := models.Credentials{APIKey: apiKey}.Trimmed()

	if err := v.validate(ctx, req, credentials); err != nil {
		logger.FromContextOr(ctx, v.logger).Info().Err(err).
			Str("advertiser_id", req.AdvertiserID).
			Msg("provisioning request rejected")
		v.metrics.ObserveProvisioning(metrics.OutcomeValidation, 0)
		return models.Failed(models.FailureValidation, app.MsgMissingRequiredData)
	}

	return v.inner.Provision(ctx, credentials.APIKey, req)
}

func (v *ProvisioningValidationService) validate(ctx context.Context, req models.ProvisionRequest, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredData, err)
	}
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingRequiredData, err)
	}
	return nil
}

func (v *ProvisioningValidationService) Wrap(wrapper ProvisioningService) ProvisioningService {
	v.inner = wrapper
	return v
}
