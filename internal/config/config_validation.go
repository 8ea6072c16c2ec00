// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package config

import "time"

// Minimum lengths for generated credential material.
const (
	minSaltLength  = 16
	minTokenLength = 32
)

// Defaults applied to fields left unset by every configuration source.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultDriver          = "sqlite3"
	defaultSQLiteDSN       = "finance_tracker.db"
	defaultSessionDuration = 7 * 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
)

// applyDefaults fills zero-valued fields of the merged configuration with
// the application defaults. Called by the builder after merging and before
// validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == defaultDriver {
		cfg.Storage.DB.DSN = defaultSQLiteDSN
	}
	if cfg.Auth.SessionDuration == 0 {
		cfg.Auth.SessionDuration = defaultSessionDuration
	}
	if cfg.Auth.SaltLength == 0 {
		cfg.Auth.SaltLength = minSaltLength
	}
	if cfg.Auth.TokenLength == 0 {
		cfg.Auth.TokenLength = 2 * minTokenLength
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "sqlite3" && cfg.Storage.DB.Driver != "pgx" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.SaltLength < minSaltLength {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.TokenLength < minTokenLength {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.SessionDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
