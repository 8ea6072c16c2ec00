// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package http

import (
	"errors"
	"net/http"

	"github.com/avoronov/go-fin-tracker/internal/app"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/service"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrAllFieldsRequired: http.StatusBadRequest,
	validators.ErrPasswordTooShort:  http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrInvalidPhone:      http.StatusBadRequest,
	validators.ErrInvalidIdentifier: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUsernameExists:      http.StatusConflict,
	service.ErrEmailExists:         http.StatusConflict,
	service.ErrPhoneExists:         http.StatusConflict,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrAccountDisabled:     http.StatusForbidden,
	service.ErrInvalidSession:      http.StatusUnauthorized,

	errInvalidJSON:     http.StatusBadRequest,
	errInvalidRecordID: http.StatusBadRequest,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrRecordNotFound:    http.StatusNotFound,
	store.ErrSessionNotFound:   http.StatusUnauthorized,
	store.ErrUserAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the client-facing rendition of err. Anything that maps
// to 500 is replaced by the generic wording; the details stay in the log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		http.Error(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
