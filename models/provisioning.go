// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AdvertiserSelectManual is the value of the advertiser dropdown that means
// "use the manually entered advertiser id".
const AdvertiserSelectManual = "manual"

// CreateCreativeForm is the body of POST /create. It is accepted both as JSON
// and as an urlencoded form.
type CreateCreativeForm struct {
	AdvertiserSelect string `json:"advertiserSelect" form:"advertiserSelect"`
	AdvertiserID     string `json:"advertiserId" form:"advertiserId"`
	CreativeName     string `json:"creativeName" form:"creativeName"`
	CampaignPeriod   string `json:"campaignPeriod" form:"campaignPeriod"`
	TargetURL        string `json:"targetUrl" form:"targetUrl"`
	APIKey           string `json:"apiKey" form:"apiKey"`
}

// ProvisionRequest converts the form into a provisioning request.
func (f CreateCreativeForm) ProvisionRequest() ProvisionRequest {
	return ProvisionRequest{
		AdvertiserID:   f.ResolvedAdvertiserID(),
		CreativeName:   f.CreativeName,
		CampaignPeriod: f.CampaignPeriod,
		TargetURL:      f.TargetURL,
	}
}

// ResolvedAdvertiserID returns the advertiser id chosen by the form: the
// dropdown value unless it is empty or "manual".
func (f CreateCreativeForm) ResolvedAdvertiserID() string {
	selected := strings.TrimSpace(f.AdvertiserSelect)
	if selected == "" || selected == AdvertiserSelectManual {
		return f.AdvertiserID
	}
	return selected
}

// ProvisionRequest is the input of one provisioning run. The advertiser id is
// already resolved.
type ProvisionRequest struct {
	AdvertiserID   string
	CreativeName   string
	CampaignPeriod string
	TargetURL      string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r ProvisionRequest) Trimmed() ProvisionRequest {
	return ProvisionRequest{
		AdvertiserID:   strings.TrimSpace(r.AdvertiserID),
		CreativeName:   strings.TrimSpace(r.CreativeName),
		CampaignPeriod: strings.TrimSpace(r.CampaignPeriod),
		TargetURL:      strings.TrimSpace(r.TargetURL),
	}
}

// FailureKind classifies a failed [ProvisionResult].
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureUnauthorized
	FailureStep
	FailureRemote
)

// ProvisionResult is the single terminal outcome of a provisioning run.
type ProvisionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Kind is set for failures only and is not part of the wire format.
	Kind FailureKind `json:"-"`
}

// Succeeded builds a successful result.
func Succeeded(message string) ProvisionResult {
	return ProvisionResult{Success: true, Message: message}
}

// Failed builds a failed result of the given kind.
func Failed(kind FailureKind, message string) ProvisionResult {
	return ProvisionResult{Success: false, Message: message, Kind: kind}
}
