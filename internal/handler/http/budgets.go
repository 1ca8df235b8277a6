// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-budget-keeper/internal/app"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AddBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	log.Info().Any("received budget data", req).Send()

	budget, err := h.services.BudgetService.AddBudget(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, budget, http.StatusCreated)
}

func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	budgetID := chi.URLParam(r, paramBudgetID)

	var req models.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	log.Info().Str("budget_id", budgetID).Any("received budget update", req).Send()

	budget, err := h.services.BudgetService.UpdateBudget(ctx, budgetID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, budget, http.StatusOK)
}

func (h *Handler) deleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BudgetService.DeleteBudget(r.Context(), chi.URLParam(r, paramBudgetID)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgBudgetDeleted}, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, paramIndex))
	if err != nil {
		// digits only, so this is an overflow; the store still reports a
		// missing budget before a missing expense
		index = math.MaxInt
	}

	if err = h.services.BudgetService.DeleteExpense(r.Context(), chi.URLParam(r, paramBudgetID), index); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgExpenseDeleted}, http.StatusOK)
}
