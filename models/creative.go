// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// CreativeNamePrefix is prepended to the sub-folder name to form the
	// creative name.
	CreativeNamePrefix = "LinkTXT - "

	// CreativeStatusActive is the only status creatives are created with.
	CreativeStatusActive = "ACTIVE"

	// LinkCreativeContent is the placeholder content required by the
	// platform. Link creatives do not render it.
	LinkCreativeContent = "."

	// LinkCreativeDescription is attached to every creative created here.
	LinkCreativeDescription = "Created automatically by go-link-txt"
)

// NewLinkCreative describes a link creative to be created inside a set.
type NewLinkCreative struct {
	CreativeSetID string
	Name          string
	TargetURL     string
}

// CreateLinkCreativeCommand is the JSON body of the create-link-creative call.
type CreateLinkCreativeCommand struct {
	CommandID     string `json:"commandId"`
	CreativeID    string `json:"creativeId"`
	CreativeSetID string `json:"creativeSetId"`
	Name          string `json:"name"`
	Content       string `json:"content"`
	Description   string `json:"description"`
	TargetURL     string `json:"targetUrl"`
	Status        string `json:"status"`
}

// LinkCreative is the created creative as known to this service.
type LinkCreative struct {
	ID            string `json:"creativeId"`
	CreativeSetID string `json:"creativeSetId"`
	Name          string `json:"name"`
	TargetURL     string `json:"targetUrl"`
	Status        string `json:"status"`
}
