// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package app contains shared application-layer constants used across the
// fin-tracker server handlers and services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API —
// in particular the credential-failure messages, whose wording must not leak
// which part of a login attempt was wrong.
package app

const (
	// MsgUserRegistered confirms a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgAllFieldsRequired is returned when a registration or login request
	// is missing one or more mandatory fields.
	MsgAllFieldsRequired = "All fields are required"

	// MsgPasswordTooShort is returned when the chosen password is shorter
	// than the 8-character minimum.
	MsgPasswordTooShort = "Password must be at least 8 characters"

	// MsgInvalidEmail is returned when the e-mail address does not match the
	// basic local@domain.tld shape.
	MsgInvalidEmail = "Invalid email format"

	// MsgInvalidPhone is returned when the phone number is not an optional
	// plus sign followed by 10-15 digits.
	MsgInvalidPhone = "Invalid phone number format"

	// MsgUsernameExists, MsgEmailExists and MsgPhoneExists report the first
	// uniqueness collision found during registration.
	MsgUsernameExists = "Username already exists"
	MsgEmailExists    = "Email already exists"
	MsgPhoneExists    = "Phone number already exists"

	// MsgInvalidCredentials is the unified rejection for both an unknown
	// identifier and a wrong password. The two cases are intentionally
	// indistinguishable to callers.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAccountDisabled is returned when the account exists and the
	// password may even be correct, but the active flag is off.
	MsgAccountDisabled = "Account is disabled"

	// MsgAccountDeactivated confirms a self-service deactivation.
	MsgAccountDeactivated = "Account deactivated"

	// MsgInvalidSession is returned for any bearer token that does not map
	// to a live session — unknown, expired, or revoked alike.
	MsgInvalidSession = "Invalid session"

	// MsgInternalServerError is the generic message shown to clients when
	// an unexpected storage or infrastructure failure occurs. Details go to
	// the operator-facing log only.
	MsgInternalServerError = "Something went wrong, please try again"
)
