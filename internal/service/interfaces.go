// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

type BudgetService interface {
	AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error)
	ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
	DeleteExpense(ctx context.Context, budgetID string, index int) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// BudgetServiceWrapper defines middleware composition for BudgetService.
type BudgetServiceWrapper interface {
	Wrap(BudgetService) BudgetService
}
