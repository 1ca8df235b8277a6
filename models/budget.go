// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Budget is a single income/expenses/savings record owned by a user.
type Budget struct {
	// BudgetID is the opaque unique identifier generated at creation.
	BudgetID string `json:"budgetId"`

	// UserID references the owning user. It is not checked against the
	// user store.
	UserID string `json:"userId"`

	// Income is the budget's income amount.
	Income float64 `json:"income"`

	// Expenses is the ordered list of expenses. An expense is addressed
	// only by its position in this slice.
	Expenses []Expense `json:"expenses"`

	// Savings is the budget's savings amount. Defaults to 0.
	Savings float64 `json:"savings"`

	// CreatedAt is the creation timestamp, formatted with [TimestampLayout].
	CreatedAt string `json:"createdAt"`
}

// Expense is an entry embedded in a [Budget]. It has no identity of its own.
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`

	// Date is either a calendar date in [DateLayout] form or, when the
	// submitted value could not be parsed as one, the timestamp of the
	// moment the budget was created.
	Date string `json:"date"`
	Note string `json:"note"`
}

// BudgetUpdate carries a partial update of a budget.
// Only non-nil fields are applied.
type BudgetUpdate struct {
	Income   *float64
	Expenses *[]Expense
	Savings  *float64
}

const (
	// DateLayout is the accepted calendar-date form of [Expense.Date].
	// Month and day may be written with or without a leading zero.
	DateLayout = "2006-1-2"

	// TimestampLayout is the form of [Budget.CreatedAt] and of expense dates
	// that were replaced by the current time.
	TimestampLayout = "2006-01-02 15:04:05.000000"
)
