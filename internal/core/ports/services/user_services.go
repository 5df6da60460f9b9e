package services

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateProfile applies a partial update. An email clash is a conflict.
	UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
