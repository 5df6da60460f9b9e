package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// NewOpaqueToken returns n random bytes encoded as unpadded base64url, safe
// to carry in a query string or cookie.
func NewOpaqueToken(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("opaque token length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashOpaqueToken returns the hex SHA256 of an opaque value such as an OAuth state.
func HashOpaqueToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareOpaqueTokenHash compares a raw token with its stored SHA256 hash in constant time.
func CompareOpaqueTokenHash(token string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashOpaqueToken(token)), []byte(storedHash)) == 1
}
