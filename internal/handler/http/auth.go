// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avoronov/go-fin-tracker/internal/app"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/utils"
	"github.com/avoronov/go-fin-tracker/models"
)

// register handles POST /api/user/register. The response body confirms the
// registration with the shared wording; no session is created, the client is
// expected to log in next.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registered.UserID).Msg("user registered via http")

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserRegistered}, http.StatusCreated)
}

// login handles POST /api/user/login. On success the session token is
// returned both in the JSON body and as a bearer Authorization header, so
// browser clients and API clients can pick whichever transport they prefer.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	info, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", info.UserID).Msg("user logged in via http")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", info.Token))
	utils.WriteJSON(w, info, http.StatusOK)
}

// logout handles POST /api/user/logout. Revoking an already-revoked token
// still succeeds; the deleted flag tells the two outcomes apart.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, _ := utils.GetSessionTokenFromContext(ctx)

	deleted, err := h.services.AuthService.Logout(ctx, token)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LogoutResponse{Deleted: deleted}, http.StatusOK)
}

// deactivate handles POST /api/user/deactivate. The account is never
// physically deleted: the active flag is turned off, blocking future logins,
// and the current session is revoked. Other live sessions of the account die
// on their next verification.
func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	token, _ := utils.GetSessionTokenFromContext(ctx)

	if err := h.services.AuthService.Deactivate(ctx, userID); err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("failed to revoke session after deactivation")
	}

	log.Info().Int64("user_id", userID).Msg("account deactivated via http")

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccountDeactivated}, http.StatusOK)
}

// session handles GET /api/user/session and echoes the identity behind the
// presented token. The auth middleware has already verified it.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, _ := utils.GetSessionTokenFromContext(ctx)

	info, err := h.services.AuthService.VerifySession(ctx, token)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
