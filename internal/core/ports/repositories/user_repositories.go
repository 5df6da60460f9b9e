package repositories

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail looks a user up by normalised email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider looks a user up by the ID an OAuth provider assigned them.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser inserts a new user. A unique violation yields a conflict naming the field.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites the mutable columns of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
