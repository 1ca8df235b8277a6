// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/mock"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthValidationService(validators.NewRequestValidator()).
		Wrap(NewAuthService(repo, hasher, logger.Nop()))

	return svc, repo, hasher
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_StoresHashedPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash("1234").Return("$2a$digest", nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), models.User{Name: "Al", Email: "al@x.io", PasswordHash: "$2a$digest"}).
		Return(models.User{UserID: "u1", Name: "Al", Email: "al@x.io", PasswordHash: "$2a$digest"}, nil)

	user, err := svc.Signup(ctx, models.SignupRequest{
		Name:     ptr("Al"),
		Email:    ptr("al@x.io"),
		Password: ptr("1234"),
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, "$2a$digest", user.PasswordHash)
}

func TestSignup_EmptyStringsArePresent(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash("").Return("$2a$empty", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: "u1"}, nil)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: ptr(""), Email: ptr(""), Password: ptr("")})

	require.NoError(t, err)
}

func TestSignup_MissingField_NoStoreCall(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
	}{
		{"no name", models.SignupRequest{Email: ptr("a@b.c"), Password: ptr("p")}},
		{"no email", models.SignupRequest{Name: ptr("A"), Password: ptr("p")}},
		{"no password", models.SignupRequest{Name: ptr("A"), Email: ptr("a@b.c")}},
		{"empty body", models.SignupRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: any call to the mocks fails the test
			svc, _, _ := newTestAuthService(t)

			_, err := svc.Signup(ctx, tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, validators.ErrMissingRequiredFields)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$digest", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: ptr("A"), Email: ptr("a@b.c"), Password: ptr("p")})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestSignup_HashFailure(t *testing.T) {
	svc, _, hasher := newTestAuthService(t)
	hashErr := errors.New("boom")

	hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	_, err := svc.Signup(ctx, models.SignupRequest{Name: ptr("A"), Email: ptr("a@b.c"), Password: ptr("p")})

	assert.ErrorIs(t, err, hashErr)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	stored := models.User{UserID: "u1", Email: "john@example.com", PasswordHash: "$2a$digest"}

	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").Return(stored, nil)
	hasher.EXPECT().Verify("$2a$digest", "1234").Return(true)

	user, err := svc.Login(ctx, models.LoginRequest{Email: ptr("john@example.com"), Password: ptr("1234")})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: "u1", PasswordHash: "$2a$digest"}, nil)
	hasher.EXPECT().Verify("$2a$digest", "wrong").Return(false)

	_, err := svc.Login(ctx, models.LoginRequest{Email: ptr("john@example.com"), Password: ptr("wrong")})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@x.io").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: ptr("nobody@x.io"), Password: ptr("1234")})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_StoreFailure(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	storeErr := errors.New("store unavailable")

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, storeErr)

	_, err := svc.Login(ctx, models.LoginRequest{Email: ptr("a@b.c"), Password: ptr("1234")})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingEmailOrPassword(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{"no email", models.LoginRequest{Password: ptr("1234")}},
		{"no password", models.LoginRequest{Email: ptr("john@example.com")}},
		{"empty body", models.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService(t)

			_, err := svc.Login(ctx, tt.req)

			assert.ErrorIs(t, err, validators.ErrMissingEmailOrPassword)
		})
	}
}

// ─────────────────────────────────────────────
// Unvalidated core
// ─────────────────────────────────────────────

func TestAuthService_NilFieldsDoNotPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewAuthService(repo, hasher, logger.Nop())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "").Return(models.User{}, store.ErrNoUserWasFound)

	assert.NotPanics(t, func() {
		_, err := svc.Login(ctx, models.LoginRequest{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
