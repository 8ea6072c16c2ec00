// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package models

// MessageResponse is the JSON body returned for operations whose only result
// is a human-readable confirmation or rejection message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LogoutResponse reports whether a logout call removed a live session.
// Deleting an unknown token is not an error, so the call always succeeds;
// Deleted distinguishes the two cases for callers that care.
type LogoutResponse struct {
	Deleted bool `json:"deleted"`
}
