package mapping

import (
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/models"
)

func ToModelNewsSource(d domain.NewsSource) models.NewsSource {
	return models.NewsSource{
		ID:          d.ID,
		Name:        d.Name,
		DisplayName: d.DisplayName,
		WebsiteURL:  toNullString(d.WebsiteURL),
		APISource:   d.APISource,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainNewsSource(m models.NewsSource) domain.NewsSource {
	return domain.NewsSource{
		ID:          m.ID,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		WebsiteURL:  fromNullString(m.WebsiteURL),
		APISource:   m.APISource,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}
