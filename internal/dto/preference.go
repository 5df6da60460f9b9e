package dto

import (
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// UpdatePreferencesRequest replaces only the lists that are present.
type UpdatePreferencesRequest struct {
	PreferredSources    *[]string `json:"preferred_sources" binding:"omitempty,max=100,dive,max=255"`
	PreferredCategories *[]string `json:"preferred_categories" binding:"omitempty,max=100,dive,max=100"`
	PreferredAuthors    *[]string `json:"preferred_authors" binding:"omitempty,max=100,dive,max=255"`
}

func (r UpdatePreferencesRequest) ToDomain() domain.PreferenceUpdate {
	return domain.PreferenceUpdate{
		PreferredSources:    r.PreferredSources,
		PreferredCategories: r.PreferredCategories,
		PreferredAuthors:    r.PreferredAuthors,
	}
}

type PreferenceResponse struct {
	PreferredSources    []string  `json:"preferred_sources"`
	PreferredCategories []string  `json:"preferred_categories"`
	PreferredAuthors    []string  `json:"preferred_authors"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func ToPreferenceResponse(p *domain.Preference) PreferenceResponse {
	return PreferenceResponse{
		PreferredSources:    domain.NormalizeSet(p.PreferredSources),
		PreferredCategories: domain.NormalizeSet(p.PreferredCategories),
		PreferredAuthors:    domain.NormalizeFoldSet(p.PreferredAuthors),
		UpdatedAt:           p.UpdatedAt,
	}
}
