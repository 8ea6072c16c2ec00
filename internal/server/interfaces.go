// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package server

// Server is the lifecycle contract a transport must satisfy to be managed by
// this package: RunServer blocks until the server stops serving, and Shutdown
// drains connections and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
