// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/models"
)

// budgetRepository is the SQL-backed implementation of [BudgetRepository].
// The (user_id, category, month, year) uniqueness is a storage constraint;
// saving an existing combination is an upsert, never a duplicate row.
type budgetRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBudgetRepository constructs a [BudgetRepository] backed by the provided
// database connection and logger.
func NewBudgetRepository(db *DB, logger *logger.Logger) BudgetRepository {
	logger.Debug().Msg("creating budget repository")
	return &budgetRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertBudgetEntry inserts the budget row or replaces the amount of an
// existing (user, category, month, year) combination. The returned entry
// carries the canonical server-assigned fields either way.
func (r *budgetRepository) UpsertBudgetEntry(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, upsertBudgetEntry,
		entry.UserID,
		entry.Category,
		entry.Amount,
		entry.Month,
		entry.Year,
		now,
		now,
	).Scan(&entry.BudgetID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.UpsertBudgetEntry").
			Int64("user_id", entry.UserID).
			Str("category", entry.Category).
			Msg("failed to upsert budget entry")
		return models.BudgetEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// GetBudgetEntries lists the user's budget rows, optionally narrowed to one
// month and/or year. Empty month and zero year mean "all".
func (r *budgetRepository) GetBudgetEntries(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBudgetEntriesQuery(userID, month, year)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetBudgetEntries").
			Int64("user_id", userID).
			Msg("failed to build listing query")
		return nil, err
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "budgetRepository.GetBudgetEntries").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	entries := make([]models.BudgetEntry, 0, 12)

	for rows.Next() {
		var entry models.BudgetEntry

		scanErr := rows.Scan(
			&entry.BudgetID,
			&entry.UserID,
			&entry.Category,
			&entry.Amount,
			&entry.Month,
			&entry.Year,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "budgetRepository.GetBudgetEntries").
				Int64("user_id", userID).
				Msg("failed to scan budget row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "budgetRepository.GetBudgetEntries").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteBudgetEntry removes a budget row owned by userID. Returns
// [ErrRecordNotFound] when no row matches.
func (r *budgetRepository) DeleteBudgetEntry(ctx context.Context, userID int64, budgetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBudgetEntry, budgetID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.DeleteBudgetEntry").
			Int64("user_id", userID).
			Int64("budget_id", budgetID).
			Msg("failed to delete budget entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
