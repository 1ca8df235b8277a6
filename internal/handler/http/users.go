// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, paramUserID))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUserBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.services.BudgetService.ListUserBudgets(r.Context(), chi.URLParam(r, paramUserID))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, budgets, http.StatusOK)
}
