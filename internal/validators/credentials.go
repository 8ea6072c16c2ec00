// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/avoronov/go-fin-tracker/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the unique login name of an account.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a register or login request.
	FieldPassword = "password"

	// FieldEmail targets the unique e-mail address of an account.
	FieldEmail = "email"

	// FieldPhone targets the unique phone number of an account.
	FieldPhone = "phone"

	// FieldFullName targets the display name submitted at registration.
	FieldFullName = "full_name"

	// FieldIdentifier targets the identifier/kind pair of a login request.
	FieldIdentifier = "identifier"
)

// minPasswordLength is the minimum accepted password length in bytes.
const minPasswordLength = 8

var (
	// emailPattern accepts any local@domain.tld shape. Deliverability is
	// not checked; the format gate only rejects obvious garbage.
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

	// phonePattern accepts an optional leading plus sign followed by 10 to
	// 15 digits.
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// CredentialsValidator implements the Validator interface for the
// authentication request models: RegisterRequest and LoginRequest. Both
// value and pointer forms are accepted, with optional field-level scoping
// via variadic field name arguments.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks a registration form.
//
// Rules, in order:
//  1. Every field is mandatory (whitespace-only counts as empty).
//  2. The password must be at least 8 characters.
//  3. The e-mail must match the local@domain.tld shape.
//  4. The phone must be an optional plus sign followed by 10-15 digits.
//
// The presence check runs across all mandatory fields regardless of the
// field scoping; format checks honour the requested subset.
func (v *CredentialsValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if blank(request.Username) || blank(request.Password) || blank(request.Email) || blank(request.Phone) || blank(request.FullName) {
		return ErrAllFieldsRequired
	}

	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldEmail, FieldPhone}
	}

	for _, field := range fields {
		switch field {
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldEmail:
			if !emailPattern.MatchString(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if !phonePattern.MatchString(request.Phone) {
				return ErrInvalidPhone
			}
		case FieldUsername, FieldFullName:
			// covered by the mandatory-fields check above
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest checks a login attempt: both the identifier and the
// password must be present, and the identifier kind (when set) must be one
// of username, email or phone. No format checks are applied here — a
// malformed identifier simply never matches an account.
func (v *CredentialsValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if blank(request.Identifier) || blank(request.Password) {
		return ErrAllFieldsRequired
	}

	if request.Kind != "" && !request.Kind.Valid() {
		return ErrInvalidIdentifier
	}

	for _, field := range fields {
		switch field {
		case FieldIdentifier, FieldPassword:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
