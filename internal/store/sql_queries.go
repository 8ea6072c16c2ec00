// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/go-fin-tracker/models"
)

// Positional placeholders are written $N strictly in ascending order and
// never reused, which keeps every query valid for both the pgx and the
// sqlite3 driver.
const (
	createUser = `INSERT INTO users (username, email, phone_number, full_name, password_hash, salt, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
	RETURNING user_id, username, email, phone_number, full_name, password_hash, salt, is_active, created_at, last_login;`

	findUserByUsername = `SELECT user_id, username, email, phone_number, full_name, password_hash, salt, is_active, created_at, last_login
	FROM users
	WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, phone_number, full_name, password_hash, salt, is_active, created_at, last_login
	FROM users
	WHERE email = $1;`

	findUserByPhone = `SELECT user_id, username, email, phone_number, full_name, password_hash, salt, is_active, created_at, last_login
	FROM users
	WHERE phone_number = $1;`

	updateLastLogin = `UPDATE users
	SET last_login = $1
	WHERE user_id = $2;`

	setUserActive = `UPDATE users
	SET is_active = $1
	WHERE user_id = $2;`

	createSession = `INSERT INTO sessions (user_id, session_token, expires_at, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING session_id, user_id, session_token, expires_at, created_at;`

	findSessionWithUser = `SELECT s.session_id, s.user_id, s.session_token, s.expires_at, s.created_at,
	       u.username, u.email, u.phone_number, u.full_name, u.password_hash, u.salt, u.is_active, u.created_at, u.last_login
	FROM sessions s
	JOIN users u ON u.user_id = s.user_id
	WHERE s.session_token = $1;`

	deleteSession = `DELETE FROM sessions
	WHERE session_token = $1;`

	saveTransaction = `INSERT INTO transactions (user_id, tx_date, amount, tx_type, description, category, payment_method, additional_data, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING transaction_id, created_at;`

	updateTransaction = `UPDATE transactions
	SET tx_date = $1, amount = $2, tx_type = $3, description = $4, category = $5, payment_method = $6, additional_data = $7
	WHERE transaction_id = $8 AND user_id = $9;`

	deleteTransaction = `DELETE FROM transactions
	WHERE transaction_id = $1 AND user_id = $2;`

	saveAsset = `INSERT INTO assets (user_id, name, value, owner, asset_type, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING asset_id, created_at, updated_at;`

	getAssets = `SELECT asset_id, user_id, name, value, owner, asset_type, created_at, updated_at
	FROM assets
	WHERE user_id = $1
	ORDER BY asset_id;`

	updateAsset = `UPDATE assets
	SET name = $1, value = $2, owner = $3, asset_type = $4, updated_at = $5
	WHERE asset_id = $6 AND user_id = $7;`

	deleteAsset = `DELETE FROM assets
	WHERE asset_id = $1 AND user_id = $2;`

	saveLiability = `INSERT INTO liabilities (user_id, name, value, owner, liability_type, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING liability_id, created_at, updated_at;`

	getLiabilities = `SELECT liability_id, user_id, name, value, owner, liability_type, created_at, updated_at
	FROM liabilities
	WHERE user_id = $1
	ORDER BY liability_id;`

	updateLiability = `UPDATE liabilities
	SET name = $1, value = $2, owner = $3, liability_type = $4, updated_at = $5
	WHERE liability_id = $6 AND user_id = $7;`

	deleteLiability = `DELETE FROM liabilities
	WHERE liability_id = $1 AND user_id = $2;`

	upsertBudgetEntry = `INSERT INTO budget (user_id, category, amount, month, year, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (user_id, category, month, year)
	DO UPDATE SET amount = excluded.amount, updated_at = excluded.updated_at
	RETURNING budget_id, created_at, updated_at;`

	deleteBudgetEntry = `DELETE FROM budget
	WHERE budget_id = $1 AND user_id = $2;`

	setPreference = `INSERT INTO preferences (user_id, pref_key, pref_value, updated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, pref_key)
	DO UPDATE SET pref_value = excluded.pref_value, updated_at = excluded.updated_at
	RETURNING user_id, pref_key, pref_value, updated_at;`

	getPreferences = `SELECT user_id, pref_key, pref_value, updated_at
	FROM preferences
	WHERE user_id = $1
	ORDER BY pref_key;`
)

// psql builds queries with $N placeholders for the dynamic listings below.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// findUserQuery maps an identifier kind to its lookup query.
func findUserQuery(kind models.IdentifierKind) (string, error) {
	switch kind {
	case models.ByUsername:
		return findUserByUsername, nil
	case models.ByEmail:
		return findUserByEmail, nil
	case models.ByPhone:
		return findUserByPhone, nil
	default:
		return "", fmt.Errorf("%w: unknown identifier kind %q", ErrBuildingSQLQuery, kind)
	}
}

// buildGetTransactionsQuery assembles the transaction listing for one user.
// Zero-valued filter fields contribute no WHERE clause.
func buildGetTransactionsQuery(userID int64, filter models.TransactionFilter) (string, []any, error) {
	builder := psql.
		Select("transaction_id", "user_id", "tx_date", "amount", "tx_type", "description", "category", "payment_method", "additional_data", "created_at").
		From("transactions").
		Where(sq.Eq{"user_id": userID})

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"tx_type": filter.Type})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"tx_date": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.LtOrEq{"tx_date": filter.To})
	}

	query, args, err := builder.OrderBy("tx_date DESC", "transaction_id DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetBudgetEntriesQuery assembles the budget listing for one user,
// optionally narrowed to a single month and/or year.
func buildGetBudgetEntriesQuery(userID int64, month string, year int) (string, []any, error) {
	builder := psql.
		Select("budget_id", "user_id", "category", "amount", "month", "year", "created_at", "updated_at").
		From("budget").
		Where(sq.Eq{"user_id": userID})

	if month != "" {
		builder = builder.Where(sq.Eq{"month": month})
	}
	if year != 0 {
		builder = builder.Where(sq.Eq{"year": year})
	}

	query, args, err := builder.OrderBy("year", "month", "category").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
