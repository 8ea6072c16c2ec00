// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a user-scoped item of positive net worth (account balance,
// vehicle, investment, ...).
type Asset struct {
	AssetID   int64           `json:"id"`
	UserID    int64           `json:"-"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Owner     string          `json:"owner,omitempty"`
	AssetType string          `json:"asset_type,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// Liability is a user-scoped debt (loan, credit card balance, ...).
type Liability struct {
	LiabilityID   int64           `json:"id"`
	UserID        int64           `json:"-"`
	Name          string          `json:"name"`
	Value         decimal.Decimal `json:"value"`
	Owner         string          `json:"owner,omitempty"`
	LiabilityType string          `json:"liability_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Liability model.
func (l Liability) TableName() string {
	return "liabilities"
}

// NetWorthSummary is the per-user aggregate returned by the net-worth
// endpoint: sum of asset values minus sum of liability values.
type NetWorthSummary struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}
