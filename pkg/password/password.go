// Package password wraps bcrypt hashing for credential storage.
//
// Hashes are salted per call, so two hashes of the same plaintext never
// match; comparison must always go through Verify, never through equality
// of independently computed digests.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. 12 keeps a single hash around 250ms on
// commodity hardware, which bounds login latency while staying expensive
// to brute-force.
const Cost = 12

// Hash returns the bcrypt digest of plaintext with an embedded random salt.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is
// constant-time; a mismatch returns false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
