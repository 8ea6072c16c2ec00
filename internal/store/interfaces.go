// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"context"
	"time"

	"github.com/avoronov/go-fin-tracker/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrUserAlreadyExists] when any of the
	// unique identifiers (username, email, phone) collides.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByIdentifier looks up an account by one of its unique
	// identifiers. Returns [ErrNoUserWasFound] when no account matches.
	FindUserByIdentifier(ctx context.Context, kind models.IdentifierKind, identifier string) (models.User, error)

	// UpdateLastLogin records the timestamp of a successful login.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// SetActive flips the account's active flag. Accounts are never
	// physically deleted.
	SetActive(ctx context.Context, userID int64, active bool) error
}

// SessionRepository provides persistence for login sessions.
type SessionRepository interface {
	// CreateSession inserts a new session row and returns it with
	// server-assigned fields populated. Returns [ErrTokenAlreadyExists]
	// on a token collision.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSessionWithUser resolves a token to its session joined with the
	// owning user. Returns [ErrSessionNotFound] when no row matches; the
	// caller decides about expiry and the account's active flag.
	FindSessionWithUser(ctx context.Context, token string) (models.Session, models.User, error)

	// DeleteSession removes the session row for the given token. The
	// boolean reports whether a row was actually deleted, so that logout
	// stays idempotent.
	DeleteSession(ctx context.Context, token string) (bool, error)
}

// TransactionRepository provides persistence for money movements. Every
// method is scoped by the owning user id.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	GetTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction models.Transaction) error
	DeleteTransaction(ctx context.Context, userID int64, transactionID int64) error
}

// AssetRepository provides persistence for net-worth assets.
type AssetRepository interface {
	SaveAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	GetAssets(ctx context.Context, userID int64) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, asset models.Asset) error
	DeleteAsset(ctx context.Context, userID int64, assetID int64) error
}

// LiabilityRepository provides persistence for net-worth liabilities.
type LiabilityRepository interface {
	SaveLiability(ctx context.Context, liability models.Liability) (models.Liability, error)
	GetLiabilities(ctx context.Context, userID int64) ([]models.Liability, error)
	UpdateLiability(ctx context.Context, liability models.Liability) error
	DeleteLiability(ctx context.Context, userID int64, liabilityID int64) error
}

// BudgetRepository provides persistence for monthly category budgets.
type BudgetRepository interface {
	// UpsertBudgetEntry inserts a budget row or, when the (user, category,
	// month, year) combination already exists, replaces its amount.
	UpsertBudgetEntry(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error)
	GetBudgetEntries(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error)
	DeleteBudgetEntry(ctx context.Context, userID int64, budgetID int64) error
}

// PreferenceRepository provides persistence for per-user settings.
type PreferenceRepository interface {
	// SetPreference inserts or replaces the value for a (user, key) pair.
	SetPreference(ctx context.Context, pref models.Preference) (models.Preference, error)
	GetPreferences(ctx context.Context, userID int64) ([]models.Preference, error)
}
