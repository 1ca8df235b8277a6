// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user is created with an
	// email that an existing user already has.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup key.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBudgetNotFound is returned when no budget has the requested id.
	ErrBudgetNotFound = errors.New("budget was not found")

	// ErrExpenseNotFound is returned when an expense index lies outside the
	// budget's expense list.
	ErrExpenseNotFound = errors.New("expense was not found")
)
