package mapping

import (
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/models"
)

func ToModelPreference(d domain.Preference) models.Preference {
	return models.Preference{
		ID:                  d.ID,
		UserID:              d.UserID,
		PreferredSources:    domain.NormalizeSet(d.PreferredSources),
		PreferredCategories: domain.NormalizeSet(d.PreferredCategories),
		PreferredAuthors:    domain.NormalizeFoldSet(d.PreferredAuthors),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainPreference never yields nil lists, so JSON always renders arrays.
func ToDomainPreference(m models.Preference) domain.Preference {
	return domain.Preference{
		ID:                  m.ID,
		UserID:              m.UserID,
		PreferredSources:    domain.NormalizeSet(m.PreferredSources),
		PreferredCategories: domain.NormalizeSet(m.PreferredCategories),
		PreferredAuthors:    domain.NormalizeFoldSet(m.PreferredAuthors),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
