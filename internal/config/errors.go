// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid session/credential settings
	// (for example, a salt or token length below the enforced minimum).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
