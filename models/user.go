// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import (
	"database/sql"
	"time"
)

// User represents an account entity used for authentication and authorization.
// Username, Email and Phone are each globally unique and immutable after
// registration. Credential material (PasswordHash, Salt) must never be
// exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login name chosen at registration.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Phone is the unique phone number of the user in +?digits form.
	Phone string `json:"phone"`

	// FullName is the display name of the user. Non-sensitive.
	FullName string `json:"full_name"`

	// PasswordHash is the hex-encoded SHA-256 digest of password||salt.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Salt is the per-user random alphanumeric value mixed into the
	// password before hashing. Never serialized.
	Salt string `json:"-"`

	// Active reports whether the account may log in. Accounts are never
	// physically deleted; deactivation is the only removal path.
	Active bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is the timestamp of the most recent successful login.
	// NULL until the first login.
	LastLoginAt sql.NullTime `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IdentifierKind selects which unique user attribute an identifier refers to
// during login.
type IdentifierKind string

const (
	ByUsername IdentifierKind = "username"
	ByEmail    IdentifierKind = "email"
	ByPhone    IdentifierKind = "phone"
)

// Valid reports whether the kind is one of the three supported lookups.
func (k IdentifierKind) Valid() bool {
	switch k {
	case ByUsername, ByEmail, ByPhone:
		return true
	}
	return false
}

// RegisterRequest carries the fields submitted by a registration form.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
}

// LoginRequest carries a login attempt. Kind defaults to "username" when
// empty.
type LoginRequest struct {
	Identifier string         `json:"identifier"`
	Password   string         `json:"password"`
	Kind       IdentifierKind `json:"kind"`
}
