// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account created through signup.
// Users are never mutated or deleted once stored.
type User struct {
	// UserID is the opaque unique identifier generated at creation.
	UserID string `json:"userId"`

	// Name is the display name provided at signup.
	Name string `json:"name"`

	// Email identifies the user at login. It is unique across all users at
	// the time of signup (case-sensitive exact match).
	Email string `json:"email"`

	// PasswordHash is the salted one-way digest of the user's password.
	// The plaintext password is never stored. The digest is exposed on the
	// wire under the "password" key, the same way the user list has always
	// been served.
	PasswordHash string `json:"password"`
}
