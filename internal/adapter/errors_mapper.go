// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	description := errorDescription(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, description)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, description)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, description)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, description)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, description)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), description)
	}
}

// errorDescription prefers the description of a JSON error body and falls
// back to the raw body or the status text.
func errorDescription(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Description != "" {
		return body.Description
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
