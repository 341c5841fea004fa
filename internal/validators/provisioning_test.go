// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-link-txt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProvisionRequest() models.ProvisionRequest {
	return models.ProvisionRequest{
		AdvertiserID: "42",
		CreativeName: "Sale",
		TargetURL:    "https://shop.example",
	}
}

func TestValidate_ProvisionRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.ProvisionRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ProvisionRequest) {}},
		{name: "valid with period", mutate: func(r *models.ProvisionRequest) { r.CampaignPeriod = "Q1" }},
		{name: "missing advertiser", mutate: func(r *models.ProvisionRequest) { r.AdvertiserID = "" }, wantErr: ErrEmptyAdvertiserID},
		{name: "missing creative name", mutate: func(r *models.ProvisionRequest) { r.CreativeName = "" }, wantErr: ErrEmptyCreativeName},
		{name: "missing target url", mutate: func(r *models.ProvisionRequest) { r.TargetURL = "" }, wantErr: ErrEmptyTargetURL},
	}

	v := NewProvisioningValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProvisionRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProvisionRequestPointer(t *testing.T) {
	req := validProvisionRequest()
	req.AdvertiserID = ""

	err := NewProvisioningValidator().Validate(context.Background(), &req)

	assert.ErrorIs(t, err, ErrEmptyAdvertiserID)
}

func TestValidate_ProvisionRequestScopedFields(t *testing.T) {
	req := models.ProvisionRequest{CreativeName: "Sale"}

	err := NewProvisioningValidator().Validate(context.Background(), req, FieldCreativeName)

	require.NoError(t, err)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewProvisioningValidator()

	require.NoError(t, v.Validate(context.Background(), models.Credentials{APIKey: "key"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.Credentials{}), ErrEmptyAPIKey)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.Credentials{}), ErrEmptyAPIKey)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewProvisioningValidator().Validate(context.Background(), validProvisionRequest(), "nope")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewProvisioningValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
