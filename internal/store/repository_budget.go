// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// budgetRepository is the in-memory implementation of [BudgetRepository].
// Budgets are kept in insertion order; every lookup is a linear scan.
type budgetRepository struct {
	mu      sync.RWMutex
	budgets []models.Budget

	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewBudgetRepository constructs an empty in-memory [BudgetRepository].
// now supplies creation timestamps; nil means time.Now.
func NewBudgetRepository(ids utils.IDGenerator, now func() time.Time, logger *logger.Logger) BudgetRepository {
	logger.Debug().Msg("creating budget repository")
	if now == nil {
		now = time.Now
	}

	return &budgetRepository{
		budgets: make([]models.Budget, 0),
		ids:     ids,
		now:     now,
		logger:  logger,
	}
}

// CreateBudget stores budget under a fresh BudgetID and CreatedAt.
//
// Expense dates that parse as [models.DateLayout] are kept as-is; all others
// are replaced by the current time in [models.TimestampLayout]. The owning
// user is not checked for existence.
func (r *budgetRepository) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	now := r.now().Format(models.TimestampLayout)

	budget = cloneBudget(budget)
	for i := range budget.Expenses {
		if _, err := time.Parse(models.DateLayout, budget.Expenses[i].Date); err != nil {
			budget.Expenses[i].Date = now
		}
	}
	budget.BudgetID = r.ids.Generate()
	budget.CreatedAt = now

	r.mu.Lock()
	r.budgets = append(r.budgets, budget)
	r.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("budget_id", budget.BudgetID).Msg("budget created")

	return cloneBudget(budget), nil
}

// ListBudgetsByUser returns copies of all budgets owned by userID in
// insertion order. The result is empty, not nil, when nothing matches.
func (r *budgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Budget, 0)
	for _, b := range r.budgets {
		if b.UserID == userID {
			result = append(result, cloneBudget(b))
		}
	}

	return result, nil
}

func (r *budgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (models.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(budgetID)
	if i < 0 {
		return models.Budget{}, ErrBudgetNotFound
	}

	return cloneBudget(r.budgets[i]), nil
}

// UpdateBudget overwrites only the non-nil fields of update on the budget
// with the given id. Replacement expenses are stored as given.
func (r *budgetRepository) UpdateBudget(ctx context.Context, budgetID string, update models.BudgetUpdate) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(budgetID)
	if i < 0 {
		return models.Budget{}, ErrBudgetNotFound
	}

	b := &r.budgets[i]
	if update.Income != nil {
		b.Income = *update.Income
	}
	if update.Expenses != nil {
		b.Expenses = cloneExpenses(*update.Expenses)
	}
	if update.Savings != nil {
		b.Savings = *update.Savings
	}

	return cloneBudget(*b), nil
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(budgetID)
	if i < 0 {
		return ErrBudgetNotFound
	}

	r.budgets = slices.Delete(r.budgets, i, i+1)

	return nil
}

// DeleteExpense removes the expense at index, shifting later expenses down
// by one position.
func (r *budgetRepository) DeleteExpense(ctx context.Context, budgetID string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(budgetID)
	if i < 0 {
		return ErrBudgetNotFound
	}

	b := &r.budgets[i]
	if index < 0 || index >= len(b.Expenses) {
		return ErrExpenseNotFound
	}

	b.Expenses = slices.Delete(b.Expenses, index, index+1)

	return nil
}

// indexOf must be called with r.mu held.
func (r *budgetRepository) indexOf(budgetID string) int {
	return slices.IndexFunc(r.budgets, func(b models.Budget) bool { return b.BudgetID == budgetID })
}

func cloneBudget(b models.Budget) models.Budget {
	b.Expenses = cloneExpenses(b.Expenses)
	return b
}

func cloneExpenses(expenses []models.Expense) []models.Expense {
	if expenses == nil {
		return make([]models.Expense, 0)
	}
	return slices.Clone(expenses)
}
