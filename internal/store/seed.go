// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// seedPassword is the password of every seed user.
const seedPassword = "1234"

type seedBudget struct {
	income   float64
	savings  float64
	expenses []models.Expense
}

type seedUser struct {
	name    string
	email   string
	budgets []seedBudget
}

// Seed expenses carry no date; the budget store stamps them with the time of
// seeding.
var seedUsers = []seedUser{
	{
		name:  "John Doe",
		email: "john@example.com",
		budgets: []seedBudget{
			{
				income:  5000,
				savings: 500,
				expenses: []models.Expense{
					{Category: "Rent", Amount: 1200, Note: "Monthly rent"},
					{Category: "Food", Amount: 300, Note: "Groceries"},
				},
			},
			{
				income:  6000,
				savings: 1000,
				expenses: []models.Expense{
					{Category: "Travel", Amount: 800, Note: "Vacation"},
					{Category: "Utilities", Amount: 150, Note: "Electricity bill"},
				},
			},
		},
	},
	{
		name:  "Jane Smith",
		email: "jane@example.com",
		budgets: []seedBudget{
			{
				income:  4500,
				savings: 700,
				expenses: []models.Expense{
					{Category: "Rent", Amount: 1100, Note: "Monthly rent"},
					{Category: "Food", Amount: 250, Note: "Groceries"},
				},
			},
			{
				income:  5500,
				savings: 800,
				expenses: []models.Expense{
					{Category: "Travel", Amount: 500, Note: "Weekend trip"},
					{Category: "Entertainment", Amount: 200, Note: "Movie night"},
				},
			},
		},
	},
}

// Seed inserts the fixed initial users and budgets. All users are inserted
// before any budget.
func (s *Storages) Seed(ctx context.Context, hasher crypto.PasswordHasher) error {
	log := logger.FromContext(ctx)

	userIDs := make([]string, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := hasher.Hash(seedPassword)
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}

		user, err := s.UserRepository.CreateUser(ctx, models.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("creating seed user %s: %w", su.email, err)
		}
		userIDs = append(userIDs, user.UserID)
	}

	budgets := 0
	for i, su := range seedUsers {
		for _, sb := range su.budgets {
			_, err := s.BudgetRepository.CreateBudget(ctx, models.Budget{
				UserID:   userIDs[i],
				Income:   sb.income,
				Expenses: sb.expenses,
				Savings:  sb.savings,
			})
			if err != nil {
				return fmt.Errorf("creating seed budget for %s: %w", su.email, err)
			}
			budgets++
		}
	}

	log.Info().Int("users", len(userIDs)).Int("budgets", budgets).Msg("seed data loaded")

	return nil
}
