// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted portal forms before the service layer
// acts on them.
//
// A [Validator] receives a form value and, optionally, the names of the
// fields to check. Without names every required field of that form is
// checked. Failures wrap [ErrMissingField] with the offending field name so
// callers can match them with errors.Is.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates an input value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
