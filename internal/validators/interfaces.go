// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package validators holds the input-validation rules enforced before data
// reaches the service and storage layers.
//
// Everything is expressed through a single [Validator] interface so services
// can take validation as a dependency and tests can swap rules out. Passing
// field names to Validate narrows the check to just those fields, which is
// how partial updates are validated.
package validators

import "context"

// Validator checks an arbitrary input value against domain rules. An empty
// fields list means validate everything; naming fields restricts the check
// to them.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
