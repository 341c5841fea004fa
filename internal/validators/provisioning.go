package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-link-txt/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAdvertiserID targets the resolved advertiser id of a provisioning request.
	FieldAdvertiserID = "advertiser_id"
	// FieldCreativeName targets the creative label.
	FieldCreativeName = "creative_name"
	// FieldTargetURL targets the destination URL of the creative.
	FieldTargetURL = "target_url"
	// FieldAPIKey targets the platform credential.
	FieldAPIKey = "api_key"
)

// ProvisioningValidator implements Validator for models.ProvisionRequest and
// models.Credentials, accepting both value and pointer forms.
type ProvisioningValidator struct {
}

// NewProvisioningValidator constructs a new ProvisioningValidator
// and returns it as the Validator interface.
func NewProvisioningValidator() Validator {
	return &ProvisioningValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Returns ErrUnsupportedType if obj is not a known model.
func (v *ProvisioningValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProvisionRequest:
		return v.validateProvisionRequest(value, fields...)
	case *models.ProvisionRequest:
		return v.validateProvisionRequest(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateProvisionRequest checks AdvertiserID, CreativeName and TargetURL by
// default. The campaign period is optional and never checked.
func (v *ProvisioningValidator) validateProvisionRequest(req models.ProvisionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAdvertiserID, FieldCreativeName, FieldTargetURL}
	}

	for _, f := range fields {
		switch f {
		case FieldAdvertiserID:
			if req.AdvertiserID == "" {
				return ErrEmptyAdvertiserID
			}
		case FieldCreativeName:
			if req.CreativeName == "" {
				return ErrEmptyCreativeName
			}
		case FieldTargetURL:
			if req.TargetURL == "" {
				return ErrEmptyTargetURL
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *ProvisioningValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKey:
			if c.APIKey == "" {
				return ErrEmptyAPIKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
