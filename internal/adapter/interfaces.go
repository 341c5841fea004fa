// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client of the ad platform REST API.
//
// The primary abstraction is [AssetAPI], which decouples the provisioning
// services from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAssetAPI]) built on resty.
//
// Every call takes the caller's API key explicitly; the adapter holds no
// credential state. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is]. HTTP 401
// and 403 both map to [ErrUnauthorized].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-link-txt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/asset_api_mock.go -package=mock

// AssetAPI defines the platform operations needed to provision link
// creatives. Implementations are responsible for serialisation,
// authentication headers, client-side id generation and mapping
// transport-level errors to the sentinel values defined in this package.
type AssetAPI interface {
	// GetUserInfo performs an authenticated read of the current user. A nil
	// error means the platform accepts apiKey.
	GetUserInfo(ctx context.Context, apiKey string) error

	// ListCreativeSets lists the advertiser's creative sets, scoped to
	// filter.ParentID when it is set. The order is the platform's order.
	ListCreativeSets(ctx context.Context, apiKey string, filter models.CreativeSetFilter) ([]models.CreativeSet, error)

	// GetCreativeSet fetches a single creative set. Returns [ErrNotFound]
	// (wrapped) when the platform does not know the set.
	GetCreativeSet(ctx context.Context, apiKey string, creativeSetID string) (models.CreativeSet, error)

	// CreateCreativeSet creates a set and returns its identifier, which is
	// generated client-side and sent along with a fresh command id.
	CreateCreativeSet(ctx context.Context, apiKey string, set models.NewCreativeSet) (string, error)

	// FindDefaultTrackingCategory returns the first tracking category of the
	// advertiser. Returns [ErrNotFound] (wrapped) when there is none.
	FindDefaultTrackingCategory(ctx context.Context, apiKey string, advertiserID string) (string, error)

	// CreateLinkCreative creates an ACTIVE link creative inside a set.
	CreateLinkCreative(ctx context.Context, apiKey string, creative models.NewLinkCreative) (models.LinkCreative, error)
}

// IDGenerator produces client-side identifiers.
type IDGenerator interface {
	Generate() string
}
