// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package config loads, merges, and validates application configuration.
//
// Settings come from environment variables, command-line flags, and an
// optional JSON file, in that priority order — the first source to set a
// field wins and later sources only fill the gaps. [GetStructuredConfig]
// is the entry point that runs the whole pipeline.
package config
