package mapping

import (
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ID:          d.ID,
		Title:       d.Title,
		Description: toNullString(d.Description),
		Content:     toNullString(d.Content),
		Author:      toNullString(d.Author),
		SourceName:  d.SourceName,
		SourceID:    toNullString(d.SourceID),
		Category:    toNullString(d.Category),
		URL:         d.URL,
		URLToImage:  toNullString(d.URLToImage),
		PublishedAt: d.PublishedAt,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ID:          m.ID,
		Title:       m.Title,
		Description: fromNullString(m.Description),
		Content:     fromNullString(m.Content),
		Author:      fromNullString(m.Author),
		SourceName:  m.SourceName,
		SourceID:    fromNullString(m.SourceID),
		Category:    fromNullString(m.Category),
		URL:         m.URL,
		URLToImage:  fromNullString(m.URLToImage),
		PublishedAt: m.PublishedAt,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainArticleSlice converts a slice of model Articles to a slice of domain Articles
func ToDomainArticleSlice(ms []models.Article) []domain.Article {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainArticle(m)
	}
	return ds
}

func ToDomainSavedArticle(m models.SavedArticle, article *domain.Article) domain.SavedArticle {
	return domain.SavedArticle{
		ID:        m.ID,
		UserID:    m.UserID,
		ArticleID: m.ArticleID,
		SavedAt:   m.SavedAt,
		Article:   article,
	}
}
