// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new
	// user loses a uniqueness race on username, email or phone number.
	// The storage constraint is the final arbiter; application-level
	// existence pre-checks provide the field-specific wording.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no session row matches the
	// presented token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTokenAlreadyExists is returned when inserting a session collides
	// with an existing token. With cryptographically random tokens this is
	// practically impossible, but the store still enforces it.
	ErrTokenAlreadyExists = errors.New("session token already exists")

	// ErrRecordNotFound is returned when an update or delete targets a
	// user-scoped record (identified by id and owner user_id) that does not
	// exist — including records that exist but belong to a different user.
	ErrRecordNotFound = errors.New("record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
