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

// liabilityRepository is the SQL-backed implementation of
// [LiabilityRepository]. It mirrors the asset repository against the
// "liabilities" table.
type liabilityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLiabilityRepository constructs a [LiabilityRepository] backed by the
// provided database connection and logger.
func NewLiabilityRepository(db *DB, logger *logger.Logger) LiabilityRepository {
	logger.Debug().Msg("creating liability repository")
	return &liabilityRepository{
		db:     db,
		logger: logger,
	}
}

// SaveLiability inserts a new liability and returns it with server-assigned
// fields (LiabilityID, CreatedAt, UpdatedAt).
func (r *liabilityRepository) SaveLiability(ctx context.Context, liability models.Liability) (models.Liability, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, saveLiability,
		liability.UserID,
		liability.Name,
		liability.Value,
		liability.Owner,
		liability.LiabilityType,
		now,
		now,
	).Scan(&liability.LiabilityID, &liability.CreatedAt, &liability.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "liabilityRepository.SaveLiability").
			Int64("user_id", liability.UserID).
			Msg("failed to insert liability")
		return models.Liability{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return liability, nil
}

// GetLiabilities lists all liabilities owned by the given user.
func (r *liabilityRepository) GetLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getLiabilities, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "liabilityRepository.GetLiabilities").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	liabilities := make([]models.Liability, 0, 10)

	for rows.Next() {
		var liability models.Liability

		scanErr := rows.Scan(
			&liability.LiabilityID,
			&liability.UserID,
			&liability.Name,
			&liability.Value,
			&liability.Owner,
			&liability.LiabilityType,
			&liability.CreatedAt,
			&liability.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "liabilityRepository.GetLiabilities").
				Int64("user_id", userID).
				Msg("failed to scan liability row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		liabilities = append(liabilities, liability)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "liabilityRepository.GetLiabilities").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return liabilities, nil
}

// UpdateLiability rewrites the mutable fields of a liability owned by
// liability.UserID and bumps its updated_at timestamp. Returns
// [ErrRecordNotFound] when no row matches the (liability_id, user_id) pair.
func (r *liabilityRepository) UpdateLiability(ctx context.Context, liability models.Liability) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLiability,
		liability.Name,
		liability.Value,
		liability.Owner,
		liability.LiabilityType,
		time.Now().UTC(),
		liability.LiabilityID,
		liability.UserID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "liabilityRepository.UpdateLiability").
			Int64("user_id", liability.UserID).
			Int64("liability_id", liability.LiabilityID).
			Msg("failed to update liability")
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

// DeleteLiability removes a liability owned by userID. Returns
// [ErrRecordNotFound] when no row matches.
func (r *liabilityRepository) DeleteLiability(ctx context.Context, userID int64, liabilityID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLiability, liabilityID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "liabilityRepository.DeleteLiability").
			Int64("user_id", userID).
			Int64("liability_id", liabilityID).
			Msg("failed to delete liability")
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
