// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, errNoDatabaseDSN)
	}

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}

	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, errBcryptCostOutOfRange)
	}

	if cfg.Auth.TokenDuration <= 0 {
		errs = append(errs, errNonPositiveTokenDuration)
	}

	return errors.Join(errs...)
}
