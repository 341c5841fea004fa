// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-link-txt services and HTTP handlers.
//
// All Msg* constants are human-readable message strings written into
// {success, message} response bodies. Step failure messages live next to
// their sentinel errors in the service package.
package app

const (
	// MsgUnauthorized is the single message for a credential the platform
	// rejected with 401 or 403, whichever step triggered it.
	MsgUnauthorized = "invalid API key or insufficient permission"

	// MsgMissingRequiredData is returned when a provisioning request lacks
	// the advertiser id, creative name, target URL or API key.
	MsgMissingRequiredData = "missing required data"

	// MsgMissingAPIKey is returned by verification when no key was supplied.
	MsgMissingAPIKey = "missing API key"

	// MsgAPIKeyVerified is returned when the platform accepted the key.
	MsgAPIKeyVerified = "API key verified"

	// MsgPlatformUnavailable is returned when the platform could not be
	// reached or answered in an unexpected way.
	MsgPlatformUnavailable = "ad platform unavailable"

	// MsgCreativeCreatedFormat renders the success message for a creative name.
	MsgCreativeCreatedFormat = "Creative \"%s\" created"

	// MsgInvalidDataProvided is returned when the request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestTooLarge is returned when the request body exceeds the
	// accepted size.
	MsgRequestTooLarge = "request body too large"

	// MsgRequestTimeout is returned when the request deadline passed before
	// the platform calls finished.
	MsgRequestTimeout = "request timed out"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
