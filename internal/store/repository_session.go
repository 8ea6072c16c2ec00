// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Sessions are plain rows in the "sessions" table keyed by their opaque
// token; expiry is a timestamp comparison left to the caller so that the
// repository stays a dumb store.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns it with
// server-assigned fields (SessionID, CreatedAt).
//
// Error handling:
//   - Unique constraint violation on the token → [ErrTokenAlreadyExists].
//     The caller may mint a fresh token and retry.
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Token, session.ExpiresAt, session.CreatedAt)

	var created models.Session
	err := row.Scan(
		&created.SessionID,
		&created.UserID,
		&created.Token,
		&created.ExpiresAt,
		&created.CreatedAt,
	)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "sessionRepository.CreateSession").
				Int64("user_id", session.UserID).
				Msg("session token collision")
			return models.Session{}, ErrTokenAlreadyExists
		}

		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("failed to insert session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindSessionWithUser resolves a token to its session row joined with the
// owning user account in a single round trip.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *sessionRepository) FindSessionWithUser(ctx context.Context, token string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	var (
		session models.Session
		user    models.User
	)
	err := r.db.QueryRowContext(ctx, findSessionWithUser, token).Scan(
		&session.SessionID,
		&session.UserID,
		&session.Token,
		&session.ExpiresAt,
		&session.CreatedAt,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.FullName,
		&user.PasswordHash,
		&user.Salt,
		&user.Active,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, models.User{}, ErrSessionNotFound
		}

		log.Err(err).
			Str("func", "sessionRepository.FindSessionWithUser").
			Msg("failed to find session")
		return models.Session{}, models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.UserID = session.UserID

	return session, user, nil
}

// DeleteSession removes the session row for the given token. Deleting an
// absent token is not an error: the boolean result distinguishes the two
// outcomes so that logout can stay idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSession, token)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
