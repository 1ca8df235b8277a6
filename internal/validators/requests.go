// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// Field name constants accepted by [RequestValidator.Validate] to restrict
// validation to a subset of the required keys. The names match the JSON keys.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "userId"
	FieldIncome   = "income"
	FieldExpenses = "expenses"
)

// RequestValidator checks that request bodies carry their required keys.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks the presence of required keys on signup, login and
// add-budget requests. When fields is empty every required key of the
// request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.AddBudgetRequest:
		return v.validateAddBudget(value, fields...)
	case *models.AddBudgetRequest:
		return v.validateAddBudget(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	present := map[string]bool{
		FieldName:     req.Name != nil,
		FieldEmail:    req.Email != nil,
		FieldPassword: req.Password != nil,
	}

	return checkPresence(present, ErrMissingRequiredFields, fields...)
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	present := map[string]bool{
		FieldEmail:    req.Email != nil,
		FieldPassword: req.Password != nil,
	}

	return checkPresence(present, ErrMissingEmailOrPassword, fields...)
}

func (v *RequestValidator) validateAddBudget(req models.AddBudgetRequest, fields ...string) error {
	present := map[string]bool{
		FieldUserID:   req.UserID != nil,
		FieldIncome:   req.Income != nil,
		FieldExpenses: req.Expenses != nil,
	}

	return checkPresence(present, ErrMissingRequiredFields, fields...)
}

// checkPresence reports missingErr naming the first absent field, checked in
// sorted order for a stable message.
func checkPresence(present map[string]bool, missingErr error, fields ...string) error {
	fields = slices.Clone(fields)
	if len(fields) == 0 {
		for field := range present {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)

	for _, field := range fields {
		ok, known := present[field]
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if !ok {
			return fmt.Errorf("%w: %s", missingErr, field)
		}
	}

	return nil
}
