// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avoronov/go-fin-tracker/internal/config"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/internal/utils"
	"github.com/avoronov/go-fin-tracker/internal/validators"
	"github.com/avoronov/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is a function-field stub of store.UserRepository. Tests set
// only the behaviours they need.
type fakeUserRepo struct {
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	findFn           func(ctx context.Context, kind models.IdentifierKind, identifier string) (models.User, error)
	updateLastLogin  func(ctx context.Context, userID int64, at time.Time) error
	setActiveFn      func(ctx context.Context, userID int64, active bool) error
	lastLoginStamped bool
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepo) FindUserByIdentifier(ctx context.Context, kind models.IdentifierKind, identifier string) (models.User, error) {
	return f.findFn(ctx, kind, identifier)
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	f.lastLoginStamped = true
	if f.updateLastLogin != nil {
		return f.updateLastLogin(ctx, userID, at)
	}
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, userID int64, active bool) error {
	return f.setActiveFn(ctx, userID, active)
}

// fakeSessionRepo is a function-field stub of store.SessionRepository.
type fakeSessionRepo struct {
	createFn func(ctx context.Context, session models.Session) (models.Session, error)
	findFn   func(ctx context.Context, token string) (models.Session, models.User, error)
	deleteFn func(ctx context.Context, token string) (bool, error)

	deletedTokens []string
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	return f.createFn(ctx, session)
}

func (f *fakeSessionRepo) FindSessionWithUser(ctx context.Context, token string) (models.Session, models.User, error) {
	return f.findFn(ctx, token)
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, token string) (bool, error) {
	f.deletedTokens = append(f.deletedTokens, token)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, token)
	}
	return true, nil
}

func testAuthConfig() config.Auth {
	return config.Auth{
		SessionDuration: 7 * 24 * time.Hour,
		SaltLength:      utils.DefaultSaltLength,
		TokenLength:     utils.DefaultTokenLength,
	}
}

// noUserFound is a findFn that reports every identifier as free.
func noUserFound(context.Context, models.IdentifierKind, string) (models.User, error) {
	return models.User{}, store.ErrNoUserWasFound
}

func newTestAuthService(users *fakeUserRepo, sessions *fakeSessionRepo) AuthService {
	return NewAuthService(users, sessions, validators.NewCredentialsValidator(), testAuthConfig(), logger.Nop())
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "john",
		Password: "secret123",
		Email:    "john@example.com",
		Phone:    "+12025550100",
		FullName: "John Smith",
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var persisted models.User
	users := &fakeUserRepo{
		findFn: noUserFound,
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 7
			user.Active = true
			return user, nil
		},
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)

	// the stored credential material must be derived, never the plaintext
	assert.NotEqual(t, "secret123", persisted.PasswordHash)
	assert.GreaterOrEqual(t, len(persisted.Salt), utils.DefaultSaltLength)
	assert.Equal(t, utils.HashPassword("secret123", persisted.Salt), persisted.PasswordHash)
}

func TestRegister_EachIdentifierCollision(t *testing.T) {
	tests := []struct {
		name      string
		takenKind models.IdentifierKind
		wantErr   error
	}{
		{"username taken", models.ByUsername, ErrUsernameExists},
		{"email taken", models.ByEmail, ErrEmailExists},
		{"phone taken", models.ByPhone, ErrPhoneExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{
				findFn: func(_ context.Context, kind models.IdentifierKind, _ string) (models.User, error) {
					if kind == tt.takenKind {
						return models.User{UserID: 1}, nil
					}
					return models.User{}, store.ErrNoUserWasFound
				},
				createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					t.Fatal("CreateUser must not be reached on a collision")
					return models.User{}, nil
				},
			}

			svc := newTestAuthService(users, &fakeSessionRepo{})

			_, err := svc.Register(context.Background(), validRegisterRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_RaceRecoversFieldSpecificError(t *testing.T) {
	// pre-checks see free identifiers, then the insert loses the race;
	// the re-check discovers the e-mail was grabbed in between
	calls := 0
	users := &fakeUserRepo{
		findFn: func(_ context.Context, kind models.IdentifierKind, _ string) (models.User, error) {
			calls++
			if calls > 3 && kind == models.ByEmail {
				return models.User{UserID: 2}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	_, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_ValidationShortCircuits(t *testing.T) {
	users := &fakeUserRepo{
		findFn: func(context.Context, models.IdentifierKind, string) (models.User, error) {
			t.Fatal("repository must not be touched for invalid input")
			return models.User{}, nil
		},
		createUserFn: func(context.Context, models.User) (models.User, error) {
			t.Fatal("repository must not be touched for invalid input")
			return models.User{}, nil
		},
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	request := validRegisterRequest()
	request.Password = "short"

	_, err := svc.Register(context.Background(), request)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

// ── Login ───────────────────────────────────────────────────────────────────

func storedUser(password string) models.User {
	salt := "0123456789abcdef"
	return models.User{
		UserID:       7,
		Username:     "john",
		Email:        "john@example.com",
		Phone:        "+12025550100",
		FullName:     "John Smith",
		PasswordHash: utils.HashPassword(password, salt),
		Salt:         salt,
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	user := storedUser("secret123")
	users := &fakeUserRepo{
		findFn: func(_ context.Context, kind models.IdentifierKind, identifier string) (models.User, error) {
			assert.Equal(t, models.ByUsername, kind)
			assert.Equal(t, "john", identifier)
			return user, nil
		},
	}

	var minted models.Session
	sessions := &fakeSessionRepo{
		createFn: func(_ context.Context, session models.Session) (models.Session, error) {
			minted = session
			session.SessionID = 42
			return session, nil
		},
	}

	svc := newTestAuthService(users, sessions)

	info, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "john", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), info.UserID)
	assert.Equal(t, "john", info.Username)
	assert.Len(t, info.Token, utils.DefaultTokenLength)
	assert.True(t, users.lastLoginStamped, "successful login must stamp last_login")

	wantExpiry := minted.CreatedAt.Add(7 * 24 * time.Hour)
	assert.True(t, minted.ExpiresAt.Equal(wantExpiry), "expiry must be created_at + session duration")
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	unknownUsers := &fakeUserRepo{findFn: noUserFound}
	svcUnknown := newTestAuthService(unknownUsers, &fakeSessionRepo{})

	_, errUnknown := svcUnknown.Login(context.Background(), models.LoginRequest{Identifier: "ghost", Password: "whatever1"})
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	user := storedUser("secret123")
	knownUsers := &fakeUserRepo{
		findFn: func(context.Context, models.IdentifierKind, string) (models.User, error) { return user, nil },
	}
	svcKnown := newTestAuthService(knownUsers, &fakeSessionRepo{})

	_, errWrong := svcKnown.Login(context.Background(), models.LoginRequest{Identifier: "john", Password: "not-the-password"})
	require.ErrorIs(t, errWrong, ErrInvalidCredentials)

	// the two rejections must be textually identical
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_DisabledAccount(t *testing.T) {
	user := storedUser("secret123")
	user.Active = false

	users := &fakeUserRepo{
		findFn: func(context.Context, models.IdentifierKind, string) (models.User, error) { return user, nil },
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "john", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogin_DisabledAccountWinsOverWrongPassword(t *testing.T) {
	user := storedUser("secret123")
	user.Active = false

	users := &fakeUserRepo{
		findFn: func(context.Context, models.IdentifierKind, string) (models.User, error) { return user, nil },
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	// the active flag is checked before the password, so even a wrong
	// password surfaces the disabled state
	_, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "john", Password: "not-the-password"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogin_IdentifierKindRouting(t *testing.T) {
	user := storedUser("secret123")

	var seenKind models.IdentifierKind
	users := &fakeUserRepo{
		findFn: func(_ context.Context, kind models.IdentifierKind, _ string) (models.User, error) {
			seenKind = kind
			return user, nil
		},
	}
	sessions := &fakeSessionRepo{
		createFn: func(_ context.Context, session models.Session) (models.Session, error) { return session, nil },
	}

	svc := newTestAuthService(users, sessions)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Identifier: "john@example.com",
		Password:   "secret123",
		Kind:       models.ByEmail,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ByEmail, seenKind)
}

func TestLogin_TokenCollisionRetries(t *testing.T) {
	user := storedUser("secret123")
	users := &fakeUserRepo{
		findFn: func(context.Context, models.IdentifierKind, string) (models.User, error) { return user, nil },
	}

	attempts := 0
	sessions := &fakeSessionRepo{
		createFn: func(_ context.Context, session models.Session) (models.Session, error) {
			attempts++
			if attempts == 1 {
				return models.Session{}, store.ErrTokenAlreadyExists
			}
			return session, nil
		},
	}

	svc := newTestAuthService(users, sessions)

	info, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "john", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NotEmpty(t, info.Token)
}

// ── VerifySession ───────────────────────────────────────────────────────────

func liveSession(token string, user models.User) models.Session {
	now := time.Now().UTC()
	return models.Session{
		SessionID: 42,
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
}

func TestVerifySession_Success(t *testing.T) {
	user := storedUser("secret123")
	session := liveSession("tok", user)

	sessions := &fakeSessionRepo{
		findFn: func(_ context.Context, token string) (models.Session, models.User, error) {
			assert.Equal(t, "tok", token)
			return session, user, nil
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	info, err := svc.VerifySession(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.UserID)
	assert.Equal(t, "tok", info.Token)
	assert.Empty(t, sessions.deletedTokens)
}

func TestVerifySession_UnknownToken(t *testing.T) {
	sessions := &fakeSessionRepo{
		findFn: func(context.Context, string) (models.Session, models.User, error) {
			return models.Session{}, models.User{}, store.ErrSessionNotFound
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	_, err := svc.VerifySession(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifySession_EmptyToken(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{}, &fakeSessionRepo{})

	_, err := svc.VerifySession(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifySession_ExpiredSessionIsRemoved(t *testing.T) {
	user := storedUser("secret123")
	session := liveSession("tok", user)
	session.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	sessions := &fakeSessionRepo{
		findFn: func(context.Context, string) (models.Session, models.User, error) {
			return session, user, nil
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	_, err := svc.VerifySession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Equal(t, []string{"tok"}, sessions.deletedTokens, "expired session must be removed on discovery")
}

func TestVerifySession_DisabledAccount(t *testing.T) {
	user := storedUser("secret123")
	user.Active = false
	session := liveSession("tok", user)

	sessions := &fakeSessionRepo{
		findFn: func(context.Context, string) (models.Session, models.User, error) {
			return session, user, nil
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	_, err := svc.VerifySession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_Idempotent(t *testing.T) {
	present := true
	sessions := &fakeSessionRepo{
		deleteFn: func(context.Context, string) (bool, error) {
			was := present
			present = false
			return was, nil
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	deleted, err := svc.Logout(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Logout(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, deleted, "second logout of the same token must succeed with deleted=false")
}

func TestLogout_StorageError(t *testing.T) {
	sessions := &fakeSessionRepo{
		deleteFn: func(context.Context, string) (bool, error) {
			return false, errors.New("db failure")
		},
	}

	svc := newTestAuthService(&fakeUserRepo{}, sessions)

	_, err := svc.Logout(context.Background(), "tok")
	assert.Error(t, err)
}

// ── Deactivate ──────────────────────────────────────────────────────────────

func TestDeactivate_FlipsFlagOnly(t *testing.T) {
	var gotActive *bool
	users := &fakeUserRepo{
		setActiveFn: func(_ context.Context, userID int64, active bool) error {
			assert.Equal(t, int64(7), userID)
			gotActive = &active
			return nil
		},
	}

	svc := newTestAuthService(users, &fakeSessionRepo{})

	require.NoError(t, svc.Deactivate(context.Background(), 7))
	require.NotNil(t, gotActive)
	assert.False(t, *gotActive)
}
