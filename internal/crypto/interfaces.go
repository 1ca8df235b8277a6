// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns user passwords into salted one-way digests and checks
// plaintext candidates against them.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls with the same
	// password return different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. It returns false on
	// mismatch and on a malformed digest; it never panics.
	Verify(digest, password string) bool
}
