// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// URL parameter names.
const (
	paramUserID   = "userId"
	paramBudgetID = "budgetId"
	paramIndex    = "index"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	router.Post("/signup", h.signup)
	router.Post("/login", h.login)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{userId}", h.getUser)
		r.Get("/{userId}/budgets", h.listUserBudgets)
	})

	router.Route("/budgets", func(r chi.Router) {
		r.Post("/", h.addBudget)
		r.Put("/{budgetId}", h.updateBudget)
		r.Delete("/{budgetId}", h.deleteBudget)
		// negative or non-numeric positions never reach the handler
		r.Delete("/{budgetId}/expenses/{index:[0-9]+}", h.deleteExpense)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
