package repositories

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// NewsSourceRepositoryFacade manages the known publishers.
type NewsSourceRepositoryFacade interface {
	ListActiveSources(ctx context.Context) ([]domain.NewsSource, error)
	ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error)
	FindSourceByName(ctx context.Context, name string) (*domain.NewsSource, error)
	SaveSource(ctx context.Context, source domain.NewsSource) error
	// BulkInsertSources skips sources whose name already exists.
	BulkInsertSources(ctx context.Context, sources []domain.NewsSource) (int64, error)
}

// CategoryRepositoryFacade manages article categories.
type CategoryRepositoryFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	FindCategoriesByNames(ctx context.Context, names []string) ([]domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
}
