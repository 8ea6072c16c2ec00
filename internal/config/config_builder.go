// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from the individual
// sources in priority order. Merging is first-wins: a field set by an
// earlier source is never overwritten by a later one.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	fromEnv := new(StructuredConfig)
	if err := parseEnv(fromEnv); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(fromEnv)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON merges the optional JSON file. Its path can only come from the
// sources already collected, so this must stay the last with* call.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	fromFile, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(fromFile)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, source := range b.sources {
		if err := mergo.Merge(merged, source); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()

	return merged, merged.validate()
}

func (b *configBuilder) add(source *StructuredConfig) *configBuilder {
	b.sources = append(b.sources, source)
	return b
}

func (b *configBuilder) jsonPath() string {
	for _, source := range b.sources {
		if source.JSONFilePath != "" {
			return source.JSONFilePath
		}
	}
	return ""
}
