// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetEntry is a per-user spending target for one category in one calendar
// month. The storage layer enforces uniqueness of (user, category, month,
// year); saving an existing combination replaces the amount.
type BudgetEntry struct {
	BudgetID  int64           `json:"id"`
	UserID    int64           `json:"-"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	Year      int             `json:"year"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the BudgetEntry model.
func (b BudgetEntry) TableName() string {
	return "budget"
}
