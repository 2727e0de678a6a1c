// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration misses a required value or carries one outside its allowed
// range.
var (
	errNoDatabaseDSN            = errors.New("database DSN is required")
	errNoTokenSignKey           = errors.New("token sign key is required")
	errBcryptCostOutOfRange     = errors.New("bcrypt cost is outside the supported range")
	errNonPositiveTokenDuration = errors.New("token duration must be positive")
)
