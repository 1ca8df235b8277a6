// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads use pointer fields so that a missing key can be told apart
// from a zero value. A nil field means the key was absent (or null).

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AddBudgetRequest is the body of POST /budgets.
type AddBudgetRequest struct {
	UserID   *string    `json:"userId,omitempty"`
	Income   *float64   `json:"income,omitempty"`
	Expenses *[]Expense `json:"expenses,omitempty"`
	Savings  *float64   `json:"savings,omitempty"`
}

// UpdateBudgetRequest is the body of PUT /budgets/{budgetId}.
// Any subset of the fields may be present; the rest are left untouched.
type UpdateBudgetRequest struct {
	Income   *float64   `json:"income,omitempty"`
	Expenses *[]Expense `json:"expenses,omitempty"`
	Savings  *float64   `json:"savings,omitempty"`
}

// ToBudgetUpdate converts the request into a store-level partial update.
func (r UpdateBudgetRequest) ToBudgetUpdate() BudgetUpdate {
	return BudgetUpdate{
		Income:   r.Income,
		Expenses: r.Expenses,
		Savings:  r.Savings,
	}
}

// Masked returns a copy of the request with the password value hidden,
// suitable for logging.
func (r SignupRequest) Masked() SignupRequest {
	if r.Password != nil {
		masked := maskedValue
		r.Password = &masked
	}
	return r
}

// Masked returns a copy of the request with the password value hidden,
// suitable for logging.
func (r LoginRequest) Masked() LoginRequest {
	if r.Password != nil {
		masked := maskedValue
		r.Password = &masked
	}
	return r
}

const maskedValue = "******"
