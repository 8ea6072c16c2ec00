// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/avoronov/go-fin-tracker/models"
)

func TestBuildGetTransactionsQuery_NoFilter(t *testing.T) {
	query, args, err := buildGetTransactionsQuery(7, models.TransactionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected user scoping clause, got: %s", query)
	}
	if strings.Contains(query, "category") {
		t.Errorf("unexpected category clause for empty filter: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
	if args[0] != int64(7) {
		t.Errorf("expected user id arg 7, got %v", args[0])
	}
}

func TestBuildGetTransactionsQuery_FullFilter(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := buildGetTransactionsQuery(7, models.TransactionFilter{
		Category: "Food",
		Type:     models.TransactionExpense,
		From:     from,
		To:       to,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, clause := range []string{"user_id = $1", "category = $2", "tx_type = $3", "tx_date >= $4", "tx_date <= $5"} {
		if !strings.Contains(query, clause) {
			t.Errorf("expected clause %q in query: %s", clause, query)
		}
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
}

func TestBuildGetTransactionsQuery_OrderedNewestFirst(t *testing.T) {
	query, _, err := buildGetTransactionsQuery(7, models.TransactionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "ORDER BY tx_date DESC") {
		t.Errorf("expected newest-first ordering, got: %s", query)
	}
}

func TestBuildGetBudgetEntriesQuery_AllEntries(t *testing.T) {
	query, args, err := buildGetBudgetEntriesQuery(7, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "month =") || strings.Contains(query, "year =") {
		t.Errorf("unexpected narrowing clause for all-entries listing: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}

func TestBuildGetBudgetEntriesQuery_SingleMonth(t *testing.T) {
	query, args, err := buildGetBudgetEntriesQuery(7, "January", 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "month = $2") || !strings.Contains(query, "year = $3") {
		t.Errorf("expected month and year clauses, got: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
}

func TestFindUserQuery_KnownKinds(t *testing.T) {
	for _, kind := range []models.IdentifierKind{models.ByUsername, models.ByEmail, models.ByPhone} {
		query, err := findUserQuery(kind)
		if err != nil {
			t.Fatalf("unexpected error for kind %s: %v", kind, err)
		}
		if !strings.Contains(query, string(kind)) && kind != models.ByPhone {
			t.Errorf("expected query for %s to mention its column: %s", kind, query)
		}
	}
}
