// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// seqIDs hands out "<prefix>-1", "<prefix>-2", ...
type seqIDs struct {
	prefix string
	n      int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestUserRepo() *userRepository {
	return NewUserRepository(&seqIDs{prefix: "user"}, logger.Nop()).(*userRepository)
}

func newTestBudgetRepo() *budgetRepository {
	return NewBudgetRepository(&seqIDs{prefix: "budget"}, fixedClock, logger.Nop()).(*budgetRepository)
}

func ptr[T any](v T) *T { return &v }

func expenses(categories ...string) []models.Expense {
	result := make([]models.Expense, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.Expense{Category: c, Amount: 10, Date: "2024-01-15", Note: c + " note"})
	}
	return result
}

var ctx = context.Background()
