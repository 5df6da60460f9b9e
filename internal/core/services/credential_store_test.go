package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/core/services"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_CreateWithoutAnyCredential(t *testing.T) {
	repo := new(MockUserRepository)
	store := services.NewCredentialStore(repo, utils.NewPasswordHasher(utils.MinBcryptCost, 1))

	_, err := store.Create(context.Background(), domain.User{Email: "x@example.com"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestCredentialStore_CreateIgnoresCallerDigest(t *testing.T) {
	repo := new(MockUserRepository)
	store := services.NewCredentialStore(repo, utils.NewPasswordHasher(utils.MinBcryptCost, 1))
	repo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash == nil && u.GoogleID != nil && u.ID != "" && u.Role == domain.RoleUser
	})).Return(nil).Once()

	planted := "$2a$10$abcdefghijklmnopqrstuuOe8w9Zs0u0c2lJpPm9sGs9kQ8rZy1rW"
	_, err := store.Create(context.Background(), domain.User{Email: "x@example.com", GoogleID: strPtr("g"), PasswordHash: &planted}, "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCredentialStore_UpdateRehashesOnlyOnChange(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := utils.NewPasswordHasher(utils.MinBcryptCost, 1)
	store := services.NewCredentialStore(repo, hasher)

	digest, err := hasher.Hash(context.Background(), "Old!Pass1")
	require.NoError(t, err)
	user := domain.User{ID: "u", Email: "u@example.com", PasswordHash: &digest, Role: domain.RoleUser}

	var stored []string
	repo.UpdateUserFn = func(_ context.Context, u domain.User) error {
		stored = append(stored, *u.PasswordHash)
		return nil
	}

	same := "Old!Pass1"
	_, err = store.Update(context.Background(), user, &same)
	require.NoError(t, err)
	changed := "New!Pass1"
	_, err = store.Update(context.Background(), user, &changed)
	require.NoError(t, err)
	_, err = store.Update(context.Background(), user, nil)
	require.NoError(t, err)

	require.Len(t, stored, 3)
	assert.Equal(t, digest, stored[0])
	assert.NotEqual(t, digest, stored[1])
	assert.Equal(t, digest, stored[2])

	ok, err := hasher.Verify(context.Background(), "New!Pass1", stored[1])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCredentialStore_UpdateRejectsDigestAsPassword(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := utils.NewPasswordHasher(utils.MinBcryptCost, 1)
	store := services.NewCredentialStore(repo, hasher)

	digest, err := hasher.Hash(context.Background(), "Old!Pass1")
	require.NoError(t, err)
	_, err = store.Update(context.Background(), domain.User{ID: "u", Email: "u@example.com", PasswordHash: &digest}, &digest)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
