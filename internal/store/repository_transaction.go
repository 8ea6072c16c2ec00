// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/models"
)

// transactionRepository is the SQL-backed implementation of
// [TransactionRepository]. Every query carries the owning user id in its
// WHERE clause, so a record belonging to another user is indistinguishable
// from a missing one.
type transactionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveTransaction inserts a new money movement and returns it with
// server-assigned fields (TransactionID, CreatedAt).
func (r *transactionRepository) SaveTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, saveTransaction,
		transaction.UserID,
		transaction.Date,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.Category,
		transaction.PaymentMethod,
		rawJSONValue(transaction.AdditionalData),
		now,
	).Scan(&transaction.TransactionID, &transaction.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.SaveTransaction").
			Int64("user_id", transaction.UserID).
			Msg("failed to insert transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return transaction, nil
}

// GetTransactions lists the user's transactions newest first, narrowed by
// the zero-value-aware filter. An empty result set is not an error.
func (r *transactionRepository) GetTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTransactionsQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetTransactions").
			Int64("user_id", userID).
			Msg("failed to build listing query")
		return nil, err
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "transactionRepository.GetTransactions").
			Int64("user_id", userID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, 50)

	for rows.Next() {
		var (
			transaction    models.Transaction
			additionalData sql.NullString
		)

		scanErr := rows.Scan(
			&transaction.TransactionID,
			&transaction.UserID,
			&transaction.Date,
			&transaction.Amount,
			&transaction.Type,
			&transaction.Description,
			&transaction.Category,
			&transaction.PaymentMethod,
			&additionalData,
			&transaction.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "transactionRepository.GetTransactions").
				Int64("user_id", userID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if additionalData.Valid {
			transaction.AdditionalData = json.RawMessage(additionalData.String)
		}

		transactions = append(transactions, transaction)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "transactionRepository.GetTransactions").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return transactions, nil
}

// UpdateTransaction rewrites all mutable fields of a transaction owned by
// transaction.UserID. Returns [ErrRecordNotFound] when no row matches the
// (transaction_id, user_id) pair.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, transaction models.Transaction) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateTransaction,
		transaction.Date,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.Category,
		transaction.PaymentMethod,
		rawJSONValue(transaction.AdditionalData),
		transaction.TransactionID,
		transaction.UserID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.UpdateTransaction").
			Int64("user_id", transaction.UserID).
			Int64("transaction_id", transaction.TransactionID).
			Msg("failed to update transaction")
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

// DeleteTransaction removes a transaction owned by userID. Returns
// [ErrRecordNotFound] when no row matches.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, userID int64, transactionID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTransaction, transactionID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.DeleteTransaction").
			Int64("user_id", userID).
			Int64("transaction_id", transactionID).
			Msg("failed to delete transaction")
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

// rawJSONValue converts a raw JSON document to a driver value, mapping an
// absent document to NULL instead of an empty string.
func rawJSONValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
