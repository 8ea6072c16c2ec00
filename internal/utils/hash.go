// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the stored representation of a user password:
// the hex-encoded SHA-256 digest of password concatenated with the per-user
// salt. The same (password, salt) pair always yields the same digest, and
// any change to either input yields a different one.
//
// The mechanism is deliberately the single-round salted hash the tracker has
// always used; swapping in a memory-hard KDF would invalidate every stored
// credential, so any such change must come with a migration.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the supplied plaintext password and salt
// hash to the expected stored digest. Comparison is exact and byte-for-byte.
func VerifyPassword(password, salt, storedHash string) bool {
	return HashPassword(password, salt) == storedHash
}
