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

// preferenceRepository is the SQL-backed implementation of
// [PreferenceRepository].
type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPreferenceRepository constructs a [PreferenceRepository] backed by the
// provided database connection and logger.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		db:     db,
		logger: logger,
	}
}

// SetPreference inserts or replaces the value for the (user, key) pair and
// returns the canonical stored row.
func (r *preferenceRepository) SetPreference(ctx context.Context, pref models.Preference) (models.Preference, error) {
	log := logger.FromContext(ctx)

	var stored models.Preference
	err := r.db.QueryRowContext(ctx, setPreference,
		pref.UserID,
		pref.Key,
		pref.Value,
		time.Now().UTC(),
	).Scan(&stored.UserID, &stored.Key, &stored.Value, &stored.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SetPreference").
			Int64("user_id", pref.UserID).
			Str("key", pref.Key).
			Msg("failed to upsert preference")
		return models.Preference{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// GetPreferences lists all settings stored for the given user, ordered by
// key for stable output.
func (r *preferenceRepository) GetPreferences(ctx context.Context, userID int64) ([]models.Preference, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getPreferences, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "preferenceRepository.GetPreferences").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	prefs := make([]models.Preference, 0, 10)

	for rows.Next() {
		var pref models.Preference

		scanErr := rows.Scan(&pref.UserID, &pref.Key, &pref.Value, &pref.UpdatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "preferenceRepository.GetPreferences").
				Int64("user_id", userID).
				Msg("failed to scan preference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		prefs = append(prefs, pref)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "preferenceRepository.GetPreferences").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return prefs, nil
}
