// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package handler aggregates the transport-level handlers of the tracker.
// Today the only transport is HTTP; the package boundary keeps room for
// additional transports without touching the service layer.
package handler

import (
	"github.com/avoronov/go-fin-tracker/internal/config"
	"github.com/avoronov/go-fin-tracker/internal/handler/http"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
