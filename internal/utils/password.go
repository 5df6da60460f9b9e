package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// MinBcryptCost is the lowest work factor accepted for stored passwords.
	MinBcryptCost = 10
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// ErrHashing is returned when a digest is malformed or hashing itself fails.
var ErrHashing = errors.New("password hashing failed")

// ErrAlreadyHashed is returned when a caller hands a bcrypt digest to Hash.
var ErrAlreadyHashed = errors.New("value is already a password hash")

// ErrPasswordTooLong is returned for input longer than MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher hashes and verifies passwords with bcrypt. At most
// `concurrency` hash or verify operations run at once.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

func NewPasswordHasher(cost int, concurrency int64) *PasswordHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PasswordHasher{cost: cost, sem: semaphore.NewWeighted(concurrency)}
}

// Hash returns the bcrypt digest of plaintext.
func (h *PasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if IsPasswordHash(plaintext) {
		return "", ErrAlreadyHashed
	}
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("waiting for hash slot: %w", err)
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil);
// only a malformed digest or a cancelled context yields an error.
func (h *PasswordHasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("waiting for hash slot: %w", err)
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashing, err)
	}
}

// IsPasswordHash detects values that are already bcrypt digests.
func IsPasswordHash(value string) bool {
	if len(value) != 60 || !strings.HasPrefix(value, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
