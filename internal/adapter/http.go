// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpBudgetAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBudgetAPI constructs an HTTP implementation of [BudgetAPI] talking to
// the server at address. A bare "host:port" is treated as an http URL.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPBudgetAPI(address string, timeout time.Duration, logger *logger.Logger) (BudgetAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpBudgetAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBudgetAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpBudgetAPI) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBudgetAPI) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_id", result.UserID).Msg("logged in")
	return result.UserID, nil
}

func (h *httpBudgetAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpBudgetAPI) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetPathParam("userId", userID).
		SetResult(&user).
		Get("/users/{userId}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpBudgetAPI) ListUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget

	resp, err := h.request(ctx).
		SetPathParam("userId", userID).
		SetResult(&budgets).
		Get("/users/{userId}/budgets")
	if err != nil {
		return nil, fmt.Errorf("list budgets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return budgets, nil
}

func (h *httpBudgetAPI) AddBudget(ctx context.Context, req models.AddBudgetRequest) (models.Budget, error) {
	var budget models.Budget

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&budget).
		Post("/budgets")
	if err != nil {
		return models.Budget{}, fmt.Errorf("add budget request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

func (h *httpBudgetAPI) UpdateBudget(ctx context.Context, budgetID string, req models.UpdateBudgetRequest) (models.Budget, error) {
	var budget models.Budget

	resp, err := h.request(ctx).
		SetPathParam("budgetId", budgetID).
		SetBody(req).
		SetResult(&budget).
		Put("/budgets/{budgetId}")
	if err != nil {
		return models.Budget{}, fmt.Errorf("update budget request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

func (h *httpBudgetAPI) DeleteBudget(ctx context.Context, budgetID string) error {
	resp, err := h.request(ctx).
		SetPathParam("budgetId", budgetID).
		Delete("/budgets/{budgetId}")
	if err != nil {
		return fmt.Errorf("delete budget request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBudgetAPI) DeleteExpense(ctx context.Context, budgetID string, index int) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"budgetId": budgetID,
			"index":    strconv.Itoa(index),
		}).
		Delete("/budgets/{budgetId}/expenses/{index}")
	if err != nil {
		return fmt.Errorf("delete expense request: %w", err)
	}

	return mapHTTPError(resp)
}
