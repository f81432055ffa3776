// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the client-side input checks of the interaction
// layer.
//
// Core concepts:
//   - Validator: generic interface to validate a value, optionally scoped to
//     a subset of named fields.
//   - Gate: runs the required-field check when a form is submitted, marks
//     fields and raises a single blocking alert.
//   - Pipeline: binds the gate, the registration-number normalizer and the
//     password-strength indicator to one form.
//
// Nothing in this package talks to the network; every check is advisory or
// local to the current page.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Alerter shows a blocking message the user has to acknowledge.
type Alerter interface {
	Alert(message string)
}
