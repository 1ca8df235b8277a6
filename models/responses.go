// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a confirmation body returned by endpoints that have no
// resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login. The user id is the only
// credential handed back; later calls identify the user by it.
type LoginResponse struct {
	UserID string `json:"userId"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	// Status repeats the HTTP status code of the reply.
	Status int `json:"status"`

	// Description is a human-readable explanation of the failure.
	Description string `json:"description"`
}
