// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported drivers. The driver name doubles as the goose dialect and
// selects the SQL flavour to apply.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Migrate applies all pending schema migrations for the given driver.
// It is intended to run exactly once at startup, before any request is
// served; repositories never patch the schema at call time.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var dir string
	switch driver {
	case DriverPostgres:
		dir = "postgres"
	case DriverSQLite:
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
