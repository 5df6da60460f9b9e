package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/models"
	"github.com/SscSPs/news_aggregator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSavedArticleRepository struct {
	BaseRepository
}

func newPgxSavedArticleRepository(pool *pgxpool.Pool) portsrepo.SavedArticleRepositoryFacade {
	return &PgxSavedArticleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavedArticleRepositoryFacade = (*PgxSavedArticleRepository)(nil)

// Save inserts the bookmark or, if the pair exists, returns the stored one.
// The unique constraint decides; there is no check-then-insert.
func (r *PgxSavedArticleRepository) Save(ctx context.Context, saved domain.SavedArticle) (*domain.SavedArticle, bool, error) {
	insert := `
		INSERT INTO saved_articles (id, user_id, article_id, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, article_id) DO NOTHING
		RETURNING id, user_id, article_id, saved_at;
	`
	var m models.SavedArticle
	err := r.Pool.QueryRow(ctx, insert, saved.ID, saved.UserID, saved.ArticleID, saved.SavedAt).
		Scan(&m.ID, &m.UserID, &m.ArticleID, &m.SavedAt)
	if err == nil {
		out := mapping.ToDomainSavedArticle(m, nil)
		return &out, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, translateError(err, "save article")
	}

	existing := `SELECT id, user_id, article_id, saved_at FROM saved_articles WHERE user_id = $1 AND article_id = $2;`
	if err := r.Pool.QueryRow(ctx, existing, saved.UserID, saved.ArticleID).
		Scan(&m.ID, &m.UserID, &m.ArticleID, &m.SavedAt); err != nil {
		return nil, false, translateError(err, "load saved article")
	}
	out := mapping.ToDomainSavedArticle(m, nil)
	return &out, false, nil
}

func (r *PgxSavedArticleRepository) Delete(ctx context.Context, userID, articleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM saved_articles WHERE user_id = $1 AND article_id = $2;`, userID, articleID)
	if err != nil {
		return translateError(err, "delete saved article")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: saved article", apperrors.ErrNotFound)
	}
	return nil
}

// ListForUser returns bookmarks newest first, joined with their articles.
func (r *PgxSavedArticleRepository) ListForUser(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error) {
	page = domain.NewPage(page.Limit, page.Offset)
	query := `
		SELECT s.id, s.user_id, s.article_id, s.saved_at,
		       a.id, a.title, a.description, a.content, a.author, a.source_name, a.source_id,
		       a.category, a.url, a.url_to_image, a.published_at, a.created_at, a.updated_at
		FROM saved_articles s
		JOIN articles a ON a.id = s.article_id
		WHERE s.user_id = $1
		ORDER BY s.saved_at DESC, s.id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, translateError(err, "list saved articles")
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavedArticle, error) {
		var s models.SavedArticle
		var a models.Article
		err := row.Scan(
			&s.ID, &s.UserID, &s.ArticleID, &s.SavedAt,
			&a.ID, &a.Title, &a.Description, &a.Content, &a.Author, &a.SourceName, &a.SourceID,
			&a.Category, &a.URL, &a.URLToImage, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		)
		article := mapping.ToDomainArticle(a)
		return mapping.ToDomainSavedArticle(s, &article), err
	})
	if err != nil {
		return nil, translateError(err, "scan saved articles")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM saved_articles WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, translateError(err, "count saved articles")
	}
	return &domain.SavedArticlePage{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

func (r *PgxSavedArticleRepository) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_articles WHERE user_id = $1 AND article_id = $2);`,
		userID, articleID,
	).Scan(&exists)
	if err != nil {
		return false, translateError(err, "check saved article")
	}
	return exists, nil
}
