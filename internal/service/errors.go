// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"errors"

	"github.com/avoronov/go-fin-tracker/internal/app"
)

// Client-facing authentication errors. Their messages are surfaced verbatim
// in HTTP response bodies, so they reuse the shared app wording.
var (
	// ErrUsernameExists, ErrEmailExists and ErrPhoneExists report the first
	// identifier collision found during registration.
	ErrUsernameExists = errors.New(app.MsgUsernameExists)
	ErrEmailExists    = errors.New(app.MsgEmailExists)
	ErrPhoneExists    = errors.New(app.MsgPhoneExists)

	// ErrInvalidCredentials is the unified rejection for both an unknown
	// identifier and a wrong password. Callers cannot tell which one it was.
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)

	// ErrAccountDisabled is returned on login when the account exists but
	// its active flag is off.
	ErrAccountDisabled = errors.New(app.MsgAccountDisabled)

	// ErrInvalidSession rejects any bearer token that does not resolve to a
	// live session of an active account.
	ErrInvalidSession = errors.New(app.MsgInvalidSession)
)

// Internal errors.
var (
	// ErrInvalidDataProvided is returned when a finance record fails the
	// service-level sanity checks (bad type, non-positive amount, missing
	// name).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSessionCreationFailed is returned when a session cannot be minted
	// even after retrying fresh tokens.
	ErrSessionCreationFailed = errors.New("failed to create session")
)
