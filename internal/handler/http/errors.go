// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/app"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// writeServiceError logs err and replies with the status and description
// mapped from it.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapped := mapError(err)

	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", mapped.status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteError(w, mapped.description, mapped.status); writeErr != nil {
		log.Err(writeErr).Msg("error response was not written")
	}
}

func writeInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
	utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
