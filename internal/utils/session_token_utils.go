package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionToken generates a SHA256 hash of a session token. Session rows
// only ever store this hash, never the token itself; the deterministic hash
// allows exact-match lookup on validation.
func HashSessionToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareSessionTokenHash compares a plain session token with its stored SHA256 hash.
// The `token` parameter here is the raw token string, not a hash.
func CompareSessionTokenHash(token string, storedHash string) bool {
	return HashSessionToken(token) == storedHash
}
