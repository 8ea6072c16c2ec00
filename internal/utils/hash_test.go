// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("correct horse", "abcDEF1234567890")
	second := HashPassword("correct horse", "abcDEF1234567890")
	assert.Equal(t, first, second)
}

func TestHashPassword_ChangesWithPassword(t *testing.T) {
	salt := "abcDEF1234567890"
	assert.NotEqual(t, HashPassword("password-one", salt), HashPassword("password-two", salt))
}

func TestHashPassword_ChangesWithSalt(t *testing.T) {
	// two users choosing the same password must not share a stored hash
	assert.NotEqual(t,
		HashPassword("shared password", "saltAAAAAAAAAAAA"),
		HashPassword("shared password", "saltBBBBBBBBBBBB"),
	)
}

func TestHashPassword_HexEncodedSHA256(t *testing.T) {
	h := HashPassword("p", "s")
	require.Len(t, h, 64)
	for _, c := range h {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestVerifyPassword(t *testing.T) {
	salt := "0123456789abcdef"
	stored := HashPassword("s3cret-pass", salt)

	assert.True(t, VerifyPassword("s3cret-pass", salt, stored))
	assert.False(t, VerifyPassword("wrong-pass", salt, stored))
	assert.False(t, VerifyPassword("s3cret-pass", "differentsalt000", stored))
}
