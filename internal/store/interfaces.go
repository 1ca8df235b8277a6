// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// UserRepository is an ordered, append-only collection of users.
// Lookups scan in insertion order and return the first match.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BudgetRepository is an ordered collection of budgets supporting in-place
// updates, removal, and positional expense removal.
type BudgetRepository interface {
	CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	ListBudgetsByUser(ctx context.Context, userID string) ([]models.Budget, error)
	FindBudgetByID(ctx context.Context, budgetID string) (models.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, update models.BudgetUpdate) (models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
	DeleteExpense(ctx context.Context, budgetID string, index int) error
}
