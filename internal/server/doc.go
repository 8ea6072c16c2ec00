// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package server owns the runtime lifecycle of the HTTP transport: binding
// the listener, watching for termination signals, and draining in-flight
// requests on shutdown.
package server
