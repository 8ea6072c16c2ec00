// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables. Mapping is driven by the
// `env` and `envPrefix` struct tags on [StructuredConfig] and its nested
// sections, so adding a new setting only requires tagging the field.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
