// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultHTTPAddress is the local development address the API listens on
	// when nothing else is configured.
	DefaultHTTPAddress = "127.0.0.1:5000"

	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "debug"
)

// Defaults returns the configuration used when no environment variable or
// JSON file provides a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ShutdownTimeout:   defaultShutdownTimeout,
		},
	}
}
