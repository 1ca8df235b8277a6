// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-budget-keeper REST API.
//
// [BudgetAPI] has one method per route. Error replies are mapped by status
// code onto the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401) while the server's
// description stays in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// BudgetAPI is a client of the budget REST API.
type BudgetAPI interface {
	// Signup registers a new user. The server replies with a message only, so
	// nothing but the error is returned.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login checks the credentials and returns the user id.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error)

	AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	// DeleteExpense removes the expense at position index of the budget.
	DeleteExpense(ctx context.Context, budgetID string, index int) error
}
