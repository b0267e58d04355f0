// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of request DTOs before they reach
// the services.
//
// Validation is declared with go-playground/validator struct tags on the
// models and reported as [FieldErrors] keyed by the JSON field name, so the
// transport layer can return them as-is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
