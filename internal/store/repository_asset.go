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

// assetRepository is the SQL-backed implementation of [AssetRepository].
type assetRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAssetRepository constructs an [AssetRepository] backed by the provided
// database connection and logger.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &assetRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAsset inserts a new asset and returns it with server-assigned fields
// (AssetID, CreatedAt, UpdatedAt).
func (r *assetRepository) SaveAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, saveAsset,
		asset.UserID,
		asset.Name,
		asset.Value,
		asset.Owner,
		asset.AssetType,
		now,
		now,
	).Scan(&asset.AssetID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "assetRepository.SaveAsset").
			Int64("user_id", asset.UserID).
			Msg("failed to insert asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return asset, nil
}

// GetAssets lists all assets owned by the given user.
func (r *assetRepository) GetAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getAssets, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "assetRepository.GetAssets").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0, 10)

	for rows.Next() {
		var asset models.Asset

		scanErr := rows.Scan(
			&asset.AssetID,
			&asset.UserID,
			&asset.Name,
			&asset.Value,
			&asset.Owner,
			&asset.AssetType,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "assetRepository.GetAssets").
				Int64("user_id", userID).
				Msg("failed to scan asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		assets = append(assets, asset)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "assetRepository.GetAssets").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return assets, nil
}

// UpdateAsset rewrites the mutable fields of an asset owned by asset.UserID
// and bumps its updated_at timestamp. Returns [ErrRecordNotFound] when no
// row matches the (asset_id, user_id) pair.
func (r *assetRepository) UpdateAsset(ctx context.Context, asset models.Asset) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateAsset,
		asset.Name,
		asset.Value,
		asset.Owner,
		asset.AssetType,
		time.Now().UTC(),
		asset.AssetID,
		asset.UserID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "assetRepository.UpdateAsset").
			Int64("user_id", asset.UserID).
			Int64("asset_id", asset.AssetID).
			Msg("failed to update asset")
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

// DeleteAsset removes an asset owned by userID. Returns [ErrRecordNotFound]
// when no row matches.
func (r *assetRepository) DeleteAsset(ctx context.Context, userID int64, assetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAsset, assetID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "assetRepository.DeleteAsset").
			Int64("user_id", userID).
			Int64("asset_id", assetID).
			Msg("failed to delete asset")
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
