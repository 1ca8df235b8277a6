// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a password that
	// does not match the stored digest, so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoBudgetsForUser is returned when a user has no budgets. An unknown
	// user id produces the same error.
	ErrNoBudgetsForUser = errors.New("no budgets found for this user")
)
