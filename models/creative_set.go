// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreativeSet is the platform's grouping object ("creative set") under which
// creatives live. The root "Link TXT" folder and its numbered sub-folders are
// both creative sets.
type CreativeSet struct {
	// ID is the platform identifier of the set. For sets created by this
	// service it is generated client-side and handed to the platform.
	ID string `json:"creativeSetId"`

	// Name is the display name. Numbered sub-folders carry a leading
	// sequence token: "<n> - <label>[ - <period>]".
	Name string `json:"name"`

	// ParentID is the identifier of the enclosing set, empty for root sets.
	ParentID string `json:"parentCreativeSetId,omitempty"`

	// AdvertiserID is the owning advertiser.
	AdvertiserID string `json:"advertiserId,omitempty"`

	// DefaultTargetURL is the default landing page for creatives in the set.
	DefaultTargetURL string `json:"defaultTargetURL,omitempty"`

	// ProductCategoryID is the category the set was created with.
	ProductCategoryID string `json:"productCategoryId,omitempty"`
}

// CreativeSetFilter narrows a creative set listing. An empty ParentID lists
// root-level sets of the advertiser.
type CreativeSetFilter struct {
	AdvertiserID string
	ParentID     string
}

// NewCreativeSet describes a set to be created. The identifiers are filled in
// by the adapter right before the request is sent.
type NewCreativeSet struct {
	AdvertiserID      string
	Name              string
	DefaultTargetURL  string
	ProductCategoryID string
	ParentID          string
}

// CreateCreativeSetCommand is the JSON body of the create-set call.
type CreateCreativeSetCommand struct {
	CommandID         string `json:"commandId"`
	CreativeSetID     string `json:"creativeSetId"`
	AdvertiserID      string `json:"advertiserId"`
	Name              string `json:"name"`
	DefaultTargetURL  string `json:"defaultTargetURL"`
	ProductCategoryID string `json:"productCategoryId"`
	ParentID          string `json:"parentCreativeSetId,omitempty"`
}
