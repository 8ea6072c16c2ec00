// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/models"
)

// Fallback labels applied when a record arrives without a category, payment
// method, owner or type.
const (
	defaultCategory = "Other"
	defaultOwner    = "Joint"
)

// financeService is the concrete implementation of FinanceService. It stamps
// the authenticated user id onto every record before persistence and applies
// the sanity checks and default labels shared by all record kinds.
type financeService struct {
	transactionRepository store.TransactionRepository
	assetRepository       store.AssetRepository
	liabilityRepository   store.LiabilityRepository
	budgetRepository      store.BudgetRepository
	preferenceRepository  store.PreferenceRepository

	logger *logger.Logger
}

// NewFinanceService constructs a FinanceService over the given repositories.
func NewFinanceService(storages *store.Storages, logger *logger.Logger) FinanceService {
	return &financeService{
		transactionRepository: storages.TransactionRepository,
		assetRepository:       storages.AssetRepository,
		liabilityRepository:   storages.LiabilityRepository,
		budgetRepository:      storages.BudgetRepository,
		preferenceRepository:  storages.PreferenceRepository,
		logger:                logger,
	}
}

// AddTransaction validates, normalises and persists a new money movement
// stamped with the authenticated user id.
func (f *financeService) AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	normalized, err := normalizeTransaction(transaction)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("transaction rejected")
		return models.Transaction{}, err
	}

	normalized.UserID = userID

	return f.transactionRepository.SaveTransaction(ctx, normalized)
}

// ListTransactions returns the user's transactions narrowed by filter.
func (f *financeService) ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	return f.transactionRepository.GetTransactions(ctx, userID, filter)
}

// UpdateTransaction rewrites an existing movement. The user id stamp makes a
// foreign record look missing (store.ErrRecordNotFound).
func (f *financeService) UpdateTransaction(ctx context.Context, userID int64, transaction models.Transaction) error {
	normalized, err := normalizeTransaction(transaction)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("transaction update rejected")
		return err
	}

	normalized.UserID = userID

	return f.transactionRepository.UpdateTransaction(ctx, normalized)
}

// DeleteTransaction removes one of the user's movements.
func (f *financeService) DeleteTransaction(ctx context.Context, userID int64, transactionID int64) error {
	return f.transactionRepository.DeleteTransaction(ctx, userID, transactionID)
}

// AddAsset validates, normalises and persists a new asset.
func (f *financeService) AddAsset(ctx context.Context, userID int64, asset models.Asset) (models.Asset, error) {
	normalized, err := normalizeAsset(asset)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("asset rejected")
		return models.Asset{}, err
	}

	normalized.UserID = userID

	return f.assetRepository.SaveAsset(ctx, normalized)
}

// ListAssets returns all assets of the user.
func (f *financeService) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	return f.assetRepository.GetAssets(ctx, userID)
}

// UpdateAsset rewrites an existing asset.
func (f *financeService) UpdateAsset(ctx context.Context, userID int64, asset models.Asset) error {
	normalized, err := normalizeAsset(asset)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("asset update rejected")
		return err
	}

	normalized.UserID = userID

	return f.assetRepository.UpdateAsset(ctx, normalized)
}

// DeleteAsset removes one of the user's assets.
func (f *financeService) DeleteAsset(ctx context.Context, userID int64, assetID int64) error {
	return f.assetRepository.DeleteAsset(ctx, userID, assetID)
}

// AddLiability validates, normalises and persists a new liability.
func (f *financeService) AddLiability(ctx context.Context, userID int64, liability models.Liability) (models.Liability, error) {
	normalized, err := normalizeLiability(liability)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("liability rejected")
		return models.Liability{}, err
	}

	normalized.UserID = userID

	return f.liabilityRepository.SaveLiability(ctx, normalized)
}

// ListLiabilities returns all liabilities of the user.
func (f *financeService) ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	return f.liabilityRepository.GetLiabilities(ctx, userID)
}

// UpdateLiability rewrites an existing liability.
func (f *financeService) UpdateLiability(ctx context.Context, userID int64, liability models.Liability) error {
	normalized, err := normalizeLiability(liability)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("liability update rejected")
		return err
	}

	normalized.UserID = userID

	return f.liabilityRepository.UpdateLiability(ctx, normalized)
}

// DeleteLiability removes one of the user's liabilities.
func (f *financeService) DeleteLiability(ctx context.Context, userID int64, liabilityID int64) error {
	return f.liabilityRepository.DeleteLiability(ctx, userID, liabilityID)
}

// SaveBudgetEntry validates and upserts a monthly category budget. Saving an
// existing (category, month, year) combination replaces the amount.
func (f *financeService) SaveBudgetEntry(ctx context.Context, userID int64, entry models.BudgetEntry) (models.BudgetEntry, error) {
	if strings.TrimSpace(entry.Category) == "" || strings.TrimSpace(entry.Month) == "" || entry.Year <= 0 {
		return models.BudgetEntry{}, fmt.Errorf("%w: budget entry needs category, month and year", ErrInvalidDataProvided)
	}
	if entry.Amount.IsNegative() {
		return models.BudgetEntry{}, fmt.Errorf("%w: budget amount must not be negative", ErrInvalidDataProvided)
	}

	entry.UserID = userID

	return f.budgetRepository.UpsertBudgetEntry(ctx, entry)
}

// ListBudgetEntries returns the user's budget rows, optionally narrowed to
// one month and/or year.
func (f *financeService) ListBudgetEntries(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error) {
	return f.budgetRepository.GetBudgetEntries(ctx, userID, month, year)
}

// DeleteBudgetEntry removes one of the user's budget rows.
func (f *financeService) DeleteBudgetEntry(ctx context.Context, userID int64, budgetID int64) error {
	return f.budgetRepository.DeleteBudgetEntry(ctx, userID, budgetID)
}

// SetPreference stores a user setting, replacing any previous value for the
// same key.
func (f *financeService) SetPreference(ctx context.Context, userID int64, key, value string) (models.Preference, error) {
	if strings.TrimSpace(key) == "" {
		return models.Preference{}, fmt.Errorf("%w: preference key is required", ErrInvalidDataProvided)
	}

	return f.preferenceRepository.SetPreference(ctx, models.Preference{
		UserID: userID,
		Key:    key,
		Value:  value,
	})
}

// ListPreferences returns all settings of the user.
func (f *financeService) ListPreferences(ctx context.Context, userID int64) ([]models.Preference, error) {
	return f.preferenceRepository.GetPreferences(ctx, userID)
}

// NetWorth sums all asset and liability values of the user. The summation
// happens here with exact decimals rather than in SQL, so that the result is
// identical regardless of which database engine is behind the store.
func (f *financeService) NetWorth(ctx context.Context, userID int64) (models.NetWorthSummary, error) {
	assets, err := f.assetRepository.GetAssets(ctx, userID)
	if err != nil {
		return models.NetWorthSummary{}, err
	}

	liabilities, err := f.liabilityRepository.GetLiabilities(ctx, userID)
	if err != nil {
		return models.NetWorthSummary{}, err
	}

	var summary models.NetWorthSummary
	for _, asset := range assets {
		summary.TotalAssets = summary.TotalAssets.Add(asset.Value)
	}
	for _, liability := range liabilities {
		summary.TotalLiabilities = summary.TotalLiabilities.Add(liability.Value)
	}
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)

	return summary, nil
}

// normalizeTransaction applies sanity checks and default labels to a money
// movement before it reaches storage.
func normalizeTransaction(transaction models.Transaction) (models.Transaction, error) {
	if transaction.Type != models.TransactionIncome && transaction.Type != models.TransactionExpense {
		return models.Transaction{}, fmt.Errorf("%w: transaction type must be income or expense", ErrInvalidDataProvided)
	}
	if !transaction.Amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("%w: transaction amount must be positive", ErrInvalidDataProvided)
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now().UTC()
	}
	if strings.TrimSpace(transaction.Category) == "" {
		transaction.Category = defaultCategory
	}
	if strings.TrimSpace(transaction.PaymentMethod) == "" {
		transaction.PaymentMethod = defaultCategory
	}

	return transaction, nil
}

// normalizeAsset applies sanity checks and default labels to an asset.
func normalizeAsset(asset models.Asset) (models.Asset, error) {
	if strings.TrimSpace(asset.Name) == "" {
		return models.Asset{}, fmt.Errorf("%w: asset name is required", ErrInvalidDataProvided)
	}
	if asset.Value.IsNegative() {
		return models.Asset{}, fmt.Errorf("%w: asset value must not be negative", ErrInvalidDataProvided)
	}

	if strings.TrimSpace(asset.Owner) == "" {
		asset.Owner = defaultOwner
	}
	if strings.TrimSpace(asset.AssetType) == "" {
		asset.AssetType = defaultCategory
	}

	return asset, nil
}

// normalizeLiability applies sanity checks and default labels to a liability.
func normalizeLiability(liability models.Liability) (models.Liability, error) {
	if strings.TrimSpace(liability.Name) == "" {
		return models.Liability{}, fmt.Errorf("%w: liability name is required", ErrInvalidDataProvided)
	}
	if liability.Value.IsNegative() {
		return models.Liability{}, fmt.Errorf("%w: liability value must not be negative", ErrInvalidDataProvided)
	}

	if strings.TrimSpace(liability.Owner) == "" {
		liability.Owner = defaultOwner
	}
	if strings.TrimSpace(liability.LiabilityType) == "" {
		liability.LiabilityType = defaultCategory
	}

	return liability, nil
}
