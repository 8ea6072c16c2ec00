// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"context"

	"github.com/avoronov/go-fin-tracker/models"
)

// AuthService covers the full credential and session lifecycle: account
// creation, login, bearer-token verification and logout.
type AuthService interface {
	// Register creates a new account from a registration form. The
	// returned user carries server-assigned fields; credential material is
	// already hashed and salted.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login verifies credentials and, on success, mints a fresh session.
	Login(ctx context.Context, request models.LoginRequest) (models.SessionInfo, error)

	// VerifySession resolves a bearer token to the identity it represents.
	// Expired sessions are removed as a side effect of being discovered.
	VerifySession(ctx context.Context, token string) (models.SessionInfo, error)

	// Logout revokes the session for the given token. The boolean reports
	// whether a session was actually removed; revoking an unknown token is
	// not an error.
	Logout(ctx context.Context, token string) (bool, error)

	// Deactivate turns off an account's active flag, which blocks future
	// logins without destroying any data.
	Deactivate(ctx context.Context, userID int64) error
}

// FinanceService covers all user-scoped finance records. Every method takes
// the owning user id as an explicit first argument; implementations must
// never trust an id embedded in the payload.
type FinanceService interface {
	AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID int64, transaction models.Transaction) error
	DeleteTransaction(ctx context.Context, userID int64, transactionID int64) error

	AddAsset(ctx context.Context, userID int64, asset models.Asset) (models.Asset, error)
	ListAssets(ctx context.Context, userID int64) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, userID int64, asset models.Asset) error
	DeleteAsset(ctx context.Context, userID int64, assetID int64) error

	AddLiability(ctx context.Context, userID int64, liability models.Liability) (models.Liability, error)
	ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error)
	UpdateLiability(ctx context.Context, userID int64, liability models.Liability) error
	DeleteLiability(ctx context.Context, userID int64, liabilityID int64) error

	SaveBudgetEntry(ctx context.Context, userID int64, entry models.BudgetEntry) (models.BudgetEntry, error)
	ListBudgetEntries(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error)
	DeleteBudgetEntry(ctx context.Context, userID int64, budgetID int64) error

	SetPreference(ctx context.Context, userID int64, key, value string) (models.Preference, error)
	ListPreferences(ctx context.Context, userID int64) ([]models.Preference, error)

	// NetWorth aggregates all assets and liabilities of the user into a
	// single summary.
	NetWorth(ctx context.Context, userID int64) (models.NetWorthSummary, error)
}
