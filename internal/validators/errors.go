// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package validators

import (
	"errors"

	"github.com/avoronov/go-fin-tracker/internal/app"
)

// Validation errors carry the exact client-facing wording from the app
// package, so handlers can surface err.Error() directly in the response body.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAllFieldsRequired = errors.New(app.MsgAllFieldsRequired)
	ErrPasswordTooShort  = errors.New(app.MsgPasswordTooShort)
	ErrInvalidEmail      = errors.New(app.MsgInvalidEmail)
	ErrInvalidPhone      = errors.New(app.MsgInvalidPhone)
	ErrInvalidIdentifier = errors.New("unknown identifier kind")
)
