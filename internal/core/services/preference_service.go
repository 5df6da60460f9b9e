package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
)

type preferenceService struct {
	BaseService
	prefRepo portsrepo.PreferenceRepositoryFacade
}

func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade) portssvc.PreferenceSvcFacade {
	return &preferenceService{prefRepo: prefRepo}
}

func (s *preferenceService) GetPreferences(ctx context.Context, userID string) (*domain.Preference, error) {
	pref, err := s.prefRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	pref.Normalize()
	return pref, nil
}

// UpdatePreferences replaces only the lists present in update.
func (s *preferenceService) UpdatePreferences(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error) {
	current, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Apply(update)
	next.UserID = userID
	next.UpdatedAt = s.Now()

	saved, err := s.prefRepo.Upsert(ctx, next)
	if err != nil {
		s.LogError(ctx, err, "Failed to save preferences")
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return saved, nil
}
