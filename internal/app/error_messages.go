// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-budget-keeper server handlers.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies, either as a confirmation message or as the description of an error
// reply. Keeping them in one place keeps the wording consistent.
package app

// Confirmation messages.
const (
	MsgUserCreated    = "User created successfully"
	MsgBudgetDeleted  = "Budget deleted successfully"
	MsgExpenseDeleted = "Expense deleted successfully"
)

// Error descriptions.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgMissingRequiredFields is returned by signup and budget creation when
	// a required key is absent.
	MsgMissingRequiredFields = "Missing required fields"

	MsgMissingEmailOrPassword = "Missing email or password"
	MsgEmailAlreadyExists     = "Email already exists"

	// MsgInvalidEmailOrPassword covers both an unknown email and a wrong
	// password.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	MsgUserNotFound     = "User not found"
	MsgNoBudgetsForUser = "No budgets found for this user"
	MsgBudgetNotFound   = "Budget not found"
	MsgExpenseNotFound  = "Expense not found"
)
