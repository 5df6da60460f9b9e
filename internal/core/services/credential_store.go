package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/metrics"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/google/uuid"
)

// PasswordHasher is satisfied by *utils.PasswordHasher.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}

// CredentialStore is the only place passwords are hashed before they reach the
// user repository. Hashing happens on create when a password is supplied and on
// update only when the new plaintext differs from the stored digest.
type CredentialStore struct {
	BaseService
	users  portsrepo.UserRepositoryFacade
	hasher PasswordHasher
}

func NewCredentialStore(users portsrepo.UserRepositoryFacade, hasher PasswordHasher) *CredentialStore {
	return &CredentialStore{users: users, hasher: hasher}
}

var (
	errHashedInput = apperrors.NewValidationFailedError("Validation errors",
		apperrors.FieldError{Field: "password", Message: "Password must be plaintext"})
	errPasswordTooLong = apperrors.NewValidationFailedError("Validation errors",
		apperrors.FieldError{Field: "password", Message: "Password must be at most 72 bytes"})
)

// Create inserts a new user. password may be empty for OAuth-only accounts,
// which must then carry a provider ID.
func (s *CredentialStore) Create(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	if utils.IsPasswordHash(password) {
		return nil, errHashedInput
	}

	now := s.Now()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = domain.NormalizeEmail(user.Email)
	if !user.Role.Valid() {
		user.Role = domain.RoleUser
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	user.PasswordHash = nil

	if password != "" {
		digest, err := s.hash(ctx, password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &digest
	}

	if !user.HasCredential() {
		return nil, apperrors.NewValidationFailedError("A user needs a password or a linked provider account")
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.ID))
		}
		return nil, err
	}
	return &user, nil
}

// Update persists user. When newPassword is non-nil it replaces the stored
// digest, unless it already matches it.
func (s *CredentialStore) Update(ctx context.Context, user domain.User, newPassword *string) (*domain.User, error) {
	if newPassword != nil {
		if utils.IsPasswordHash(*newPassword) {
			return nil, errHashedInput
		}
		unchanged := false
		if user.HasPassword() {
			same, err := s.hasher.Verify(ctx, *newPassword, *user.PasswordHash)
			if err != nil && !errors.Is(err, utils.ErrHashing) {
				return nil, err
			}
			unchanged = same
		}
		if !unchanged {
			digest, err := s.hash(ctx, *newPassword)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = &digest
		}
	}

	user.Email = domain.NormalizeEmail(user.Email)
	user.UpdatedAt = s.Now()
	if !user.HasCredential() {
		return nil, apperrors.NewValidationFailedError("A user needs a password or a linked provider account")
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update user", slog.String("user_id", user.ID))
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword reports whether plaintext matches the user's stored digest.
// Users without a password never match.
func (s *CredentialStore) VerifyPassword(ctx context.Context, user *domain.User, plaintext string) (bool, error) {
	if user == nil || !user.HasPassword() {
		return false, nil
	}
	return s.hasher.Verify(ctx, plaintext, *user.PasswordHash)
}

func (s *CredentialStore) hash(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	digest, err := s.hasher.Hash(ctx, plaintext)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", errPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return digest, nil
}
