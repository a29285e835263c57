// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates API payloads before they reach business
// logic. Rules are declared as `validate` struct tags on the request models
// and checked with go-playground/validator; failures are reported as a
// [*ValidationError] keyed by the JSON field name.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named struct fields.
	Validate(context.Context, any, ...string) error
}
