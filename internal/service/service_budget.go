// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
)

type budgetService struct {
	budgetRepository store.BudgetRepository

	logger *logger.Logger
}

func NewBudgetService(budgetRepository store.BudgetRepository, logger *logger.Logger) BudgetService {
	return &budgetService{
		budgetRepository: budgetRepository,
		logger:           logger,
	}
}

// AddBudget stores a new budget. Savings defaults to 0 when absent. The user
// id is taken as given; it is not checked against the user store.
func (s *budgetService) AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error) {
	budget, err := s.budgetRepository.CreateBudget(ctx, models.Budget{
		UserID:   value(req.UserID),
		Income:   value(req.Income),
		Expenses: value(req.Expenses),
		Savings:  value(req.Savings),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("budget creation failed")
		return models.Budget{}, fmt.Errorf("budget creation failed: %w", err)
	}

	return budget, nil
}

// ListUserBudgets returns the user's budgets in creation order, or
// ErrNoBudgetsForUser when there are none.
func (s *budgetService) ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	budgets, err := s.budgetRepository.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets failed: %w", err)
	}

	if len(budgets) == 0 {
		return nil, ErrNoBudgetsForUser
	}

	return budgets, nil
}

// UpdateBudget applies the fields present in req and returns the result.
// A request with no fields returns the budget unchanged.
func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error) {
	budget, err := s.budgetRepository.UpdateBudget(ctx, budgetID, req.ToBudgetUpdate())
	if err != nil {
		return models.Budget{}, fmt.Errorf("budget update failed: %w", err)
	}

	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := s.budgetRepository.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("budget deletion failed: %w", err)
	}

	return nil
}

func (s *budgetService) DeleteExpense(ctx context.Context, budgetID string, index int) error {
	if err := s.budgetRepository.DeleteExpense(ctx, budgetID, index); err != nil {
		return fmt.Errorf("expense deletion failed: %w", err)
	}

	return nil
}
