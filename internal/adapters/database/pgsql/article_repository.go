package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/models"
	"github.com/SscSPs/news_aggregator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const articleSelectColumns = `id, title, description, content, author, source_name, source_id, category, url, url_to_image, published_at, created_at, updated_at`

type PgxArticleRepository struct {
	BaseRepository
}

func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

// QueryArticles runs the page and count queries in one round trip.
func (r *PgxArticleRepository) QueryArticles(ctx context.Context, query domain.ArticleQuery) (*domain.ArticlePage, error) {
	page := domain.NewPage(query.Page.Limit, query.Page.Offset)
	rendered, err := renderArticleQuery(query)
	if err != nil {
		return nil, err
	}
	listSQL, listArgs, countSQL := rendered.selectSQL(page)

	batch := &pgx.Batch{}
	batch.Queue(listSQL, listArgs...)
	batch.Queue(countSQL, rendered.args...)
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	rows, err := results.Query()
	if err != nil {
		return nil, translateError(err, "query articles")
	}
	modelArticles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, translateError(err, "scan articles")
	}

	var total int64
	if err := results.QueryRow().Scan(&total); err != nil {
		return nil, translateError(err, "count articles")
	}

	return &domain.ArticlePage{
		Articles: mapping.ToDomainArticleSlice(modelArticles),
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}, nil
}

func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `SELECT ` + articleSelectColumns + ` FROM articles WHERE id = $1;`
	rows, err := r.Pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, translateError(err, "find article")
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanArticle)
	if err != nil {
		return nil, translateError(err, "find article")
	}
	article := mapping.ToDomainArticle(m)
	return &article, nil
}

// BulkInsertArticles skips rows whose URL already exists.
func (r *PgxArticleRepository) BulkInsertArticles(ctx context.Context, articles []domain.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO articles (id, title, description, content, author, source_name, source_id, category, url, url_to_image, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (url) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, a := range articles {
		m := mapping.ToModelArticle(a)
		batch.Queue(query, m.ID, m.Title, m.Description, m.Content, m.Author, m.SourceName,
			m.SourceID, m.Category, m.URL, m.URLToImage, m.PublishedAt, m.CreatedAt, m.UpdatedAt)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	results := tx.SendBatch(ctx, batch)
	var inserted int64
	for i := range articles {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, translateError(err, fmt.Sprintf("insert article %d", i))
		}
		inserted += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return 0, translateError(err, "insert articles")
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func scanArticle(row pgx.CollectableRow) (models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Content, &a.Author, &a.SourceName,
		&a.SourceID, &a.Category, &a.URL, &a.URLToImage, &a.PublishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
