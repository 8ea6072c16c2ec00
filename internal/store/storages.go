// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import "github.com/avoronov/go-fin-tracker/internal/logger"

// Storages bundles all repositories behind a single dependency for the
// service layer.
type Storages struct {
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	TransactionRepository TransactionRepository
	AssetRepository       AssetRepository
	LiabilityRepository   LiabilityRepository
	BudgetRepository      BudgetRepository
	PreferenceRepository  PreferenceRepository
}

// NewStorages constructs every repository over the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		SessionRepository:     NewSessionRepository(db, logger),
		TransactionRepository: NewTransactionRepository(db, logger),
		AssetRepository:       NewAssetRepository(db, logger),
		LiabilityRepository:   NewLiabilityRepository(db, logger),
		BudgetRepository:      NewBudgetRepository(db, logger),
		PreferenceRepository:  NewPreferenceRepository(db, logger),
	}
}
