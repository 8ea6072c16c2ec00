// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes of server responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
