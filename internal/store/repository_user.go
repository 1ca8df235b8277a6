// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// Users are kept in insertion order; every lookup is a linear scan.
type userRepository struct {
	mu    sync.RWMutex
	users []models.User

	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs an empty in-memory [UserRepository] that
// assigns ids with ids.
func NewUserRepository(ids utils.IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  make([]models.User, 0),
		ids:    ids,
		logger: logger,
	}
}

// CreateUser appends user with a freshly generated UserID and returns the
// stored record. Any UserID already set on user is ignored.
//
// Returns [ErrEmailAlreadyExists] if a stored user has exactly the same email.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.users, func(u models.User) bool { return u.Email == user.Email }) {
		log.Debug().Str("email", user.Email).Msg("email is already registered")
		return models.User{}, ErrEmailAlreadyExists
	}

	user.UserID = r.ids.Generate()
	r.users = append(r.users, user)

	return user, nil
}

// FindUserByEmail returns the first user whose email equals email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

// FindUserByID returns the first user whose id equals userID.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.find(func(u models.User) bool { return u.UserID == userID })
}

// ListUsers returns a copy of all users in insertion order, password hashes
// included.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.users), nil
}

func (r *userRepository) find(match func(models.User) bool) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.users, match)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[i], nil
}
