// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"database/sql"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/migrations"
)

// DB wraps the stdlib connection pool together with the driver name and a
// driver-specific error classificator. All repositories in this package
// operate through it.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connected driver.
// Must be called once at startup before any repository is used.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the name of the database driver backing this connection
// ("pgx" or "sqlite3").
func (db *DB) Driver() string {
	return db.driver
}
