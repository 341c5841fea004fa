// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for provisioning and
// credential verification requests.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Validation runs before any remote call is attempted. Values are expected
// to be whitespace-trimmed by the caller; an empty field counts as missing.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
