// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// BudgetValidationService checks add-budget requests for their required keys.
// Every other call is passed through untouched.
type BudgetValidationService struct {
	inner     BudgetService
	validator validators.Validator
}

func NewBudgetValidationService(validator validators.Validator) BudgetServiceWrapper {
	return &BudgetValidationService{
		validator: validator,
	}
}

func (v *BudgetValidationService) AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error) {
	// userId, income and expenses are required; savings is optional
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Budget{}, fmt.Errorf("budget validation failed: %w", err)
	}

	return v.inner.AddBudget(ctx, req)
}

func (v *BudgetValidationService) ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	return v.inner.ListUserBudgets(ctx, userID)
}

func (v *BudgetValidationService) UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error) {
	return v.inner.UpdateBudget(ctx, budgetID, req)
}

func (v *BudgetValidationService) DeleteBudget(ctx context.Context, budgetID string) error {
	return v.inner.DeleteBudget(ctx, budgetID)
}

func (v *BudgetValidationService) DeleteExpense(ctx context.Context, budgetID string, index int) error {
	return v.inner.DeleteExpense(ctx, budgetID, index)
}

func (v *BudgetValidationService) Wrap(inner BudgetService) BudgetService {
	v.inner = inner
	return v
}
