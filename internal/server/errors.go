// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package server

import "errors"

var (
	errNoServersConfigured = errors.New("no servers configured")
)
