// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// handles account creation and lookup against the "users" table and works
// identically on PostgreSQL and SQLite through the embedded [*DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - Unique constraint violation on username, email or phone →
//     [ErrUserAlreadyExists]. The constraint is the final arbiter of
//     uniqueness races; field-specific wording is an application concern.
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.Phone, user.FullName, user.PasswordHash, user.Salt, now)

	var created models.User
	err := row.Scan(
		&created.UserID,
		&created.Username,
		&created.Email,
		&created.Phone,
		&created.FullName,
		&created.PasswordHash,
		&created.Salt,
		&created.Active,
		&created.CreatedAt,
		&created.LastLoginAt,
	)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "userRepository.CreateUser").
				Str("username", user.Username).
				Msg("unique constraint violation on user insert")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByIdentifier retrieves the account whose unique identifier of the
// given kind matches the provided value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Unknown identifier kind → [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *userRepository) FindUserByIdentifier(ctx context.Context, kind models.IdentifierKind, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, err := findUserQuery(kind)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.FindUserByIdentifier").
			Str("kind", string(kind)).
			Msg("failed to select lookup query")
		return models.User{}, err
	}

	var found models.User
	scanErr := r.db.QueryRowContext(ctx, query, identifier).Scan(
		&found.UserID,
		&found.Username,
		&found.Email,
		&found.Phone,
		&found.FullName,
		&found.PasswordHash,
		&found.Salt,
		&found.Active,
		&found.CreatedAt,
		&found.LastLoginAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(scanErr).
			Str("func", "userRepository.FindUserByIdentifier").
			Str("kind", string(kind)).
			Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return found, nil
}

// UpdateLastLogin stamps the timestamp of the most recent successful login.
// A missing user id is reported as [ErrNoUserWasFound].
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLastLogin, at, userID)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UpdateLastLogin").
			Int64("user_id", userID).
			Msg("failed to update last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// SetActive flips the account's active flag. Deactivated accounts keep all
// their data; they simply cannot log in until reactivated.
func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserActive, active, userID)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.SetActive").
			Int64("user_id", userID).
			Bool("active", active).
			Msg("failed to update active flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
