// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import "time"

// Preference is a single user-scoped key/value setting (default currency,
// dashboard layout choice, onboarding flags, ...). One row per (user, key).
type Preference struct {
	UserID    int64     `json:"-"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Preference model.
func (p Preference) TableName() string {
	return "preferences"
}
