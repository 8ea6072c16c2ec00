// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an "application/json" response
// with the given status code, returning the number of body bytes written.
//
// Marshaling happens before any headers are sent, so a marshal failure
// still produces a clean 500 Internal Server Error response alongside the
// returned error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
