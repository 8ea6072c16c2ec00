// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

// Package http is the REST transport of the application: route wiring,
// request handlers, and the middleware chain that wraps them.
//
// Session authentication, trace-id propagation, access logging, and gzip
// compression all run here, so the service layer below only ever sees
// authenticated, decoded requests.
package http
