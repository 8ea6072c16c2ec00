// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/config"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/internal/utils"
	"github.com/avoronov/go-fin-tracker/internal/validators"
	"github.com/avoronov/go-fin-tracker/models"
)

// tokenMintAttempts bounds how many fresh tokens are tried when a session
// insert loses the (practically impossible) token-uniqueness race.
const tokenMintAttempts = 3

// authService is the concrete implementation of AuthService. It owns
// credential hashing, the session lifecycle and the account active flag,
// delegating persistence to the user and session repositories.
type authService struct {
	// userRepository is the data-access layer for accounts.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for login sessions.
	sessionRepository store.SessionRepository

	// validator enforces the registration and login input rules.
	validator validators.Validator

	// sessionDuration controls how long a newly minted session stays valid.
	sessionDuration time.Duration

	// saltLength and tokenLength size the generated credential material.
	saltLength  int
	tokenLength int

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validator,
		sessionDuration:   cfg.SessionDuration,
		saltLength:        cfg.SaltLength,
		tokenLength:       cfg.TokenLength,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// The flow is: validate the form, check each unique identifier for an
// existing account (username first, then email, then phone — the first
// collision wins), generate a fresh salt, hash the password, and persist.
//
// The pre-checks give callers a field-specific collision message; the
// storage uniqueness constraint remains the arbiter of concurrent
// registration races. When the constraint fires, the identifiers are
// re-checked to recover the field-specific wording.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A validation error carrying the client-facing message.
//   - ErrUsernameExists / ErrEmailExists / ErrPhoneExists on collision.
//   - A wrapped storage error on infrastructure failure.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("username", request.Username).Msg("registration rejected by validation")
		return models.User{}, err
	}

	if err := a.checkIdentifiersFree(ctx, request); err != nil {
		return models.User{}, err
	}

	salt, err := utils.RandomAlphanumeric(a.saltLength)
	if err != nil {
		log.Err(err).Msg("failed to generate salt")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	user := models.User{
		Username:     request.Username,
		Email:        request.Email,
		Phone:        request.Phone,
		FullName:     request.FullName,
		PasswordHash: utils.HashPassword(request.Password, salt),
		Salt:         salt,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// lost a registration race: recover which identifier collided
			if checkErr := a.checkIdentifiersFree(ctx, request); checkErr != nil {
				return models.User{}, checkErr
			}
			return models.User{}, ErrUsernameExists
		}

		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registered.UserID).Str("username", registered.Username).Msg("user registered")

	return registered, nil
}

// checkIdentifiersFree returns the field-specific collision error for the
// first identifier that already belongs to an account, or nil when all
// three are free.
func (a *authService) checkIdentifiersFree(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	checks := []struct {
		kind       models.IdentifierKind
		identifier string
		collision  error
	}{
		{models.ByUsername, request.Username, ErrUsernameExists},
		{models.ByEmail, request.Email, ErrEmailExists},
		{models.ByPhone, request.Phone, ErrPhoneExists},
	}

	for _, check := range checks {
		_, err := a.userRepository.FindUserByIdentifier(ctx, check.kind, check.identifier)
		switch {
		case err == nil:
			return check.collision
		case errors.Is(err, store.ErrNoUserWasFound):
			// identifier is free
		default:
			log.Err(err).Str("kind", string(check.kind)).Msg("identifier availability check failed")
			return fmt.Errorf("identifier availability check failed: %w", err)
		}
	}

	return nil
}

// Login authenticates a user and mints a fresh session.
//
// The identifier kind defaults to username lookup when unset. An unknown
// identifier and a wrong password both produce ErrInvalidCredentials;
// disclosing which one failed would hand an enumeration oracle to callers.
// A disabled account gets ErrAccountDisabled before the password is even
// checked, since no credentials can ever succeed on it.
//
// A successful login stamps the account's last-login timestamp; a failure
// to stamp it is logged but does not fail the login.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.SessionInfo, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("login rejected by validation")
		return models.SessionInfo{}, err
	}

	kind := request.Kind
	if kind == "" {
		kind = models.ByUsername
	}

	user, err := a.userRepository.FindUserByIdentifier(ctx, kind, request.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.SessionInfo{}, ErrInvalidCredentials
		}

		log.Err(err).Str("kind", string(kind)).Msg("user lookup failed")
		return models.SessionInfo{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.Active {
		log.Warn().Int64("user_id", user.UserID).Msg("login attempt on disabled account")
		return models.SessionInfo{}, ErrAccountDisabled
	}

	if !utils.VerifyPassword(request.Password, user.Salt, user.PasswordHash) {
		log.Warn().Int64("user_id", user.UserID).Msg("wrong password")
		return models.SessionInfo{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := a.userRepository.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("failed to stamp last login")
	}

	session, err := a.mintSession(ctx, user.UserID, now)
	if err != nil {
		return models.SessionInfo{}, err
	}

	log.Info().Int64("user_id", user.UserID).Time("expires_at", session.ExpiresAt).Msg("user logged in")

	return sessionInfo(session, user), nil
}

// mintSession generates an opaque token and persists the session row,
// retrying with a fresh token on the off chance of a collision.
func (a *authService) mintSession(ctx context.Context, userID int64, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < tokenMintAttempts; attempt++ {
		token, err := utils.RandomAlphanumeric(a.tokenLength)
		if err != nil {
			log.Err(err).Msg("failed to generate session token")
			return models.Session{}, fmt.Errorf("token generation failed: %w", err)
		}

		session, err := a.sessionRepository.CreateSession(ctx, models.Session{
			UserID:    userID,
			Token:     token,
			ExpiresAt: now.Add(a.sessionDuration),
			CreatedAt: now,
		})
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, store.ErrTokenAlreadyExists) {
			log.Err(err).Int64("user_id", userID).Msg("session insert failed")
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
		}

		log.Warn().Int64("user_id", userID).Int("attempt", attempt+1).Msg("session token collision, regenerating")
	}

	return models.Session{}, ErrSessionCreationFailed
}

// VerifySession resolves a bearer token to the identity it represents.
//
// Unknown tokens, expired sessions and sessions of deactivated accounts are
// all rejected with the same ErrInvalidSession. An expired session row is
// deleted as a side effect of being discovered, so that expired tokens do
// not accumulate; no background sweeper exists.
func (a *authService) VerifySession(ctx context.Context, token string) (models.SessionInfo, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.SessionInfo{}, ErrInvalidSession
	}

	session, user, err := a.sessionRepository.FindSessionWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.SessionInfo{}, ErrInvalidSession
		}

		log.Err(err).Msg("session lookup failed")
		return models.SessionInfo{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if _, deleteErr := a.sessionRepository.DeleteSession(ctx, token); deleteErr != nil {
			log.Warn().Err(deleteErr).Int64("user_id", session.UserID).Msg("failed to remove expired session")
		}
		return models.SessionInfo{}, ErrInvalidSession
	}

	if !user.Active {
		log.Warn().Int64("user_id", user.UserID).Msg("session presented for disabled account")
		return models.SessionInfo{}, ErrInvalidSession
	}

	return sessionInfo(session, user), nil
}

// Logout revokes the session for the given token. Revoking an unknown or
// already-revoked token succeeds with deleted=false, which keeps logout
// idempotent.
func (a *authService) Logout(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	deleted, err := a.sessionRepository.DeleteSession(ctx, token)
	if err != nil {
		log.Err(err).Msg("logout failed")
		return false, fmt.Errorf("logout failed: %w", err)
	}

	return deleted, nil
}

// Deactivate turns off the account's active flag. Existing sessions stop
// verifying immediately; the account's data stays intact.
func (a *authService) Deactivate(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.SetActive(ctx, userID, false); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("deactivation failed")
		return fmt.Errorf("deactivation failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("account deactivated")

	return nil
}

// sessionInfo composes the caller-facing identity payload from a session
// and its owning user.
func sessionInfo(session models.Session, user models.User) models.SessionInfo {
	return models.SessionInfo{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		FullName:  user.FullName,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
