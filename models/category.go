package models

// TrackingCategory is one entry of the findTrackingCategories response.
type TrackingCategory struct {
	TrackingCategoryID string `json:"trackingCategoryId"`
	Name               string `json:"name,omitempty"`
}

// TrackingCategories is the envelope returned by findTrackingCategories.
type TrackingCategories struct {
	Entries []TrackingCategory `json:"entries"`
}

// RootFolder is the resolved "Link TXT" container of an advertiser together
// with the category new sub-folders must be created with.
type RootFolder struct {
	CreativeSetID string
	CategoryID    string

	// Created reports whether the folder was created during resolution.
	Created bool
}
