package repositories

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// PreferenceRepositoryFacade persists one preference row per user.
type PreferenceRepositoryFacade interface {
	// GetOrCreate returns the user's preferences, inserting an empty row on first access.
	GetOrCreate(ctx context.Context, userID string) (*domain.Preference, error)

	// Upsert replaces the stored lists for pref.UserID.
	Upsert(ctx context.Context, pref domain.Preference) (*domain.Preference, error)
}
