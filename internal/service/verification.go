package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/validators"
	"github.com/MKhiriev/go-link-txt/models"
)

type verificationService struct {
	api       adapter.AssetAPI
	validator validators.Validator

	logger *logger.Logger
}

func NewVerificationService(api adapter.AssetAPI, logger *logger.Logger) VerificationService {
	return &verificationService{
		api:       api,
		validator: validators.NewProvisioningValidator(),
		logger:    logger,
	}
}

// Verify performs one authenticated read. It has no side effects.
//
// Returns ErrMissingAPIKey for an empty key, ErrInvalidAPIKey when the
// platform rejects it and ErrPlatformUnavailable for any other failure.
func (v *verificationService) Verify(ctx context.Context, apiKey string) error {
	credentials := models.Credentials{APIKey: apiKey}.Trimmed()
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingAPIKey, err)
	}

	err := v.api.GetUserInfo(ctx, credentials.APIKey)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	default:
		logger.FromContextOr(ctx, v.logger).Warn().Err(err).Msg("API key verification failed")
		return fmt.Errorf("%w: %w", ErrPlatformUnavailable, err)
	}
}
