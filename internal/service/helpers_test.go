// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
)

var ctx = logger.Nop().WithContext(context.Background())

func ptr[T any](v T) *T { return &v }
