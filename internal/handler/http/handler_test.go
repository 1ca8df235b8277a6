// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type mockAuthService struct {
	signupFn func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn  func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

type mockUserService struct {
	listUsersFn func(ctx context.Context) ([]models.User, error)
	getUserFn   func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockBudgetService struct {
	addBudgetFn       func(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error)
	listUserBudgetsFn func(ctx context.Context, userID string) ([]models.Budget, error)
	updateBudgetFn    func(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error)
	deleteBudgetFn    func(ctx context.Context, budgetID string) error
	deleteExpenseFn   func(ctx context.Context, budgetID string, index int) error
}

func (m *mockBudgetService) AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error) {
	return m.addBudgetFn(ctx, req)
}

func (m *mockBudgetService) ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	return m.listUserBudgetsFn(ctx, userID)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error) {
	return m.updateBudgetFn(ctx, budgetID, req)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	return m.deleteBudgetFn(ctx, budgetID)
}

func (m *mockBudgetService) DeleteExpense(ctx context.Context, budgetID string, index int) error {
	return m.deleteExpenseFn(ctx, budgetID, index)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router over the given services. Nil services
// are replaced by zero mocks that panic if called.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.BudgetService == nil {
		services.BudgetService = &mockBudgetService{}
	}
	return NewHandler(services, logger.Nop()).Init()
}

// do sends a request through handler and returns the recorder.
func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}
