// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	BudgetService BudgetService
}

// NewServices wires the services on top of storages. Auth and budget
// services are wrapped with request validation.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, logger)),
		UserService: NewUserService(storages.UserRepository, logger),
		BudgetService: NewBudgetValidationService(validator).
			Wrap(NewBudgetService(storages.BudgetRepository, logger)),
	}
}
