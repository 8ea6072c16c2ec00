// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import "time"

// Session is a persisted login session. The token is an opaque random
// alphanumeric string presented by clients as a bearer credential; it maps to
// exactly one unexpired session at a time.
type Session struct {
	SessionID int64     `json:"-"`
	UserID    int64     `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session's expiry timestamp has passed
// relative to now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// SessionInfo is the payload returned to a caller after a successful login or
// session verification. It is the only shape in which user identity crosses
// the service boundary; downstream data access must scope by UserID taken
// from here, never from client input.
type SessionInfo struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"full_name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
