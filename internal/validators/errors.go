// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields is returned when a signup or add-budget
	// request lacks at least one required key.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrMissingEmailOrPassword is returned when a login request lacks the
	// email or the password key.
	ErrMissingEmailOrPassword = errors.New("missing email or password")
)
