// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/app"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
)

type httpError struct {
	status      int
	description string
}

var errorStatusMap = map[error]httpError{
	validators.ErrMissingRequiredFields:  {http.StatusBadRequest, app.MsgMissingRequiredFields},
	validators.ErrMissingEmailOrPassword: {http.StatusBadRequest, app.MsgMissingEmailOrPassword},

	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	service.ErrNoBudgetsForUser:   {http.StatusNotFound, app.MsgNoBudgetsForUser},

	store.ErrEmailAlreadyExists: {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrBudgetNotFound:     {http.StatusNotFound, app.MsgBudgetNotFound},
	store.ErrExpenseNotFound:    {http.StatusNotFound, app.MsgExpenseNotFound},
}

func mapError(err error) httpError {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return httpError{
		status:      http.StatusInternalServerError,
		description: http.StatusText(http.StatusInternalServerError),
	}
}
