package services

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
)

type PreferenceSvcFacade interface {
	// GetPreferences creates an empty preference row on first access.
	GetPreferences(ctx context.Context, userID string) (*domain.Preference, error)
	UpdatePreferences(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error)
}

// ArticleReaderSvc defines read operations for articles
type ArticleReaderSvc interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter, page domain.Page) (*domain.ArticlePage, error)
	SearchArticles(ctx context.Context, q string, page domain.Page) (*domain.ArticlePage, error)
	// PersonalizedArticles matches any stored preference, or everything when none are set.
	PersonalizedArticles(ctx context.Context, userID string, page domain.Page) (*domain.ArticlePage, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
}

type ArticleWriterSvc interface {
	IngestArticles(ctx context.Context, articles []domain.Article) (int64, error)
}

type ArticleSvcFacade interface {
	ArticleReaderSvc
	ArticleWriterSvc
}

type SavedArticleSvcFacade interface {
	// SaveArticle is idempotent; created reports whether a new bookmark was made.
	SaveArticle(ctx context.Context, userID, articleID string) (saved *domain.SavedArticle, created bool, err error)
	UnsaveArticle(ctx context.Context, userID, articleID string) error
	ListSavedArticles(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error)
	IsArticleSaved(ctx context.Context, userID, articleID string) (bool, error)
}

// CatalogSvcFacade manages news sources and categories.
type CatalogSvcFacade interface {
	ListActiveSources(ctx context.Context) ([]domain.NewsSource, error)
	ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error)
	GetSourceByName(ctx context.Context, name string) (*domain.NewsSource, error)
	CreateSource(ctx context.Context, req dto.CreateNewsSourceRequest) (*domain.NewsSource, error)
	InitializeSources(ctx context.Context, reqs []dto.CreateNewsSourceRequest) (int64, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	// ValidateCategories splits names into known and unknown categories.
	ValidateCategories(ctx context.Context, names []string) (valid []string, invalid []string, err error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
}

type APILogSvcFacade interface {
	RecordAPICall(ctx context.Context, req dto.CreateAPILogRequest) (*domain.APILog, error)
	ListAPILogs(ctx context.Context, r domain.APILogRange) ([]domain.APILog, error)
	// GetAPIStats aggregates the last `days` days per API source.
	GetAPIStats(ctx context.Context, days int) ([]domain.APILogStats, error)
}
