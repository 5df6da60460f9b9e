package repositories

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// ArticleReader defines read operations for article data
type ArticleReader interface {
	// QueryArticles runs a built query and returns one page plus the total match count.
	QueryArticles(ctx context.Context, query domain.ArticleQuery) (*domain.ArticlePage, error)

	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
}

// ArticleWriter defines write operations for article data
type ArticleWriter interface {
	// BulkInsertArticles inserts articles, skipping any whose URL is already stored.
	// It returns the number of rows actually inserted.
	BulkInsertArticles(ctx context.Context, articles []domain.Article) (int64, error)
}

type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}

// SavedArticleRepositoryFacade manages user bookmarks.
type SavedArticleRepositoryFacade interface {
	// Save bookmarks an article. created is false when the pair already existed.
	Save(ctx context.Context, saved domain.SavedArticle) (result *domain.SavedArticle, created bool, err error)

	// Delete removes a bookmark, returning apperrors.ErrNotFound when there was none.
	Delete(ctx context.Context, userID, articleID string) error

	// ListForUser returns bookmarks newest first, each with its article.
	ListForUser(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error)

	Exists(ctx context.Context, userID, articleID string) (bool, error)
}
