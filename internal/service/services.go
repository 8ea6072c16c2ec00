// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"github.com/avoronov/go-fin-tracker/internal/config"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/internal/validators"
)

// Services bundles the application services behind a single dependency for
// the handler layer.
type Services struct {
	AuthService    AuthService
	FinanceService FinanceService
}

// NewServices constructs every service over the shared storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, validators.NewCredentialsValidator(), cfg.Auth, logger),
		FinanceService: NewFinanceService(storages, logger),
	}
}
