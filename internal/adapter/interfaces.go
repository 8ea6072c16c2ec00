// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package adapter provides transport-layer abstractions for communicating
// with the fin-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples client-side
// code from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avoronov/go-fin-tracker/models"
)

// ServerAdapter defines transport-agnostic communication with the
// fin-tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. No session is created; call Login
	// next.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates and stores the minted session token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.SessionInfo, error)

	// Logout revokes the stored session token on the server and clears it
	// from the adapter. The boolean reports whether a live session was
	// actually removed.
	Logout(ctx context.Context) (bool, error)

	// Session echoes the identity behind the stored token.
	Session(ctx context.Context) (models.SessionInfo, error)

	// Deactivate turns off the logged-in account and clears the stored
	// token. The account data survives; future logins are blocked.
	Deactivate(ctx context.Context) error

	AddTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction models.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID int64) error

	AddAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	ListAssets(ctx context.Context) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, asset models.Asset) error
	DeleteAsset(ctx context.Context, assetID int64) error

	AddLiability(ctx context.Context, liability models.Liability) (models.Liability, error)
	ListLiabilities(ctx context.Context) ([]models.Liability, error)
	UpdateLiability(ctx context.Context, liability models.Liability) error
	DeleteLiability(ctx context.Context, liabilityID int64) error

	SaveBudgetEntry(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error)
	ListBudgetEntries(ctx context.Context, month string, year int) ([]models.BudgetEntry, error)
	DeleteBudgetEntry(ctx context.Context, budgetID int64) error

	SetPreference(ctx context.Context, preference models.Preference) (models.Preference, error)
	ListPreferences(ctx context.Context) ([]models.Preference, error)

	// NetWorth fetches the asset/liability aggregate of the logged-in user.
	NetWorth(ctx context.Context) (models.NetWorthSummary, error)
}
