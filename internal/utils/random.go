// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// alphanumAlphabet is the character set used for salts and session tokens.
const alphanumAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Default lengths for generated credential material. Salts must be at least
// 16 characters, session tokens at least 32; the defaults are deliberately
// above both minimums.
const (
	DefaultSaltLength  = 16
	DefaultTokenLength = 64
)

// RandomAlphanumeric returns a string of length charCount drawn uniformly
// from the alphanumeric alphabet using the operating system's
// cryptographically secure random source.
//
// Returns an error only when the underlying entropy source fails, which
// callers should treat as a fatal infrastructure error rather than retry.
func RandomAlphanumeric(charCount int) (string, error) {
	if charCount <= 0 {
		return "", fmt.Errorf("error generating random string: invalid length %d", charCount)
	}

	alphabetSize := big.NewInt(int64(len(alphanumAlphabet)))
	out := make([]byte, charCount)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("error generating random string: %w", err)
		}
		out[i] = alphanumAlphabet[n.Int64()]
	}

	return string(out), nil
}
