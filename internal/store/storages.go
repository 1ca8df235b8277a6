// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// Storages owns the process-wide user and budget collections. It is created
// once at startup and handed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	BudgetRepository BudgetRepository
}

// NewStorages creates empty in-memory repositories and, unless
// cfg.DisableSeed is set, fills them with the seed users and budgets.
// hasher is used only to hash seed passwords.
func NewStorages(ctx context.Context, cfg config.Storage, hasher crypto.PasswordHasher, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	ids := utils.NewUUIDGenerator()
	storages := &Storages{
		UserRepository:   NewUserRepository(ids, logger),
		BudgetRepository: NewBudgetRepository(ids, time.Now, logger),
	}

	if cfg.DisableSeed {
		logger.Info().Msg("seed data disabled")
		return storages, nil
	}

	if err := storages.Seed(ctx, hasher); err != nil {
		return nil, fmt.Errorf("error seeding storages: %w", err)
	}

	return storages, nil
}
