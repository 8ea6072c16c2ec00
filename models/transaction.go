// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recognised by the tracker. Stored as plain strings so
// that imported statements with unusual labels survive round-trips.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single user-scoped money movement. UserID is stamped from
// the authenticated session and is never taken from the request body.
type Transaction struct {
	TransactionID int64 `json:"id"`
	UserID        int64 `json:"-"`

	// Date is the value date of the transaction (time component ignored).
	Date time.Time `json:"date"`

	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`

	// AdditionalData holds free-form attributes (e.g. statement metadata)
	// as a raw JSON document.
	AdditionalData json.RawMessage `json:"additional_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter narrows a transaction listing. Zero-valued fields are
// ignored. The owning user id is not part of the filter: it always comes
// from the verified session.
type TransactionFilter struct {
	Category string    `json:"category,omitempty"`
	Type     string    `json:"type,omitempty"`
	From     time.Time `json:"from,omitempty"`
	To       time.Time `json:"to,omitempty"`
}
