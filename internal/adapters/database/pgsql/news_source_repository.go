package pgsql

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/models"
	"github.com/SscSPs/news_aggregator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const newsSourceColumns = `id, name, display_name, website_url, api_source, is_active, created_at`

type PgxNewsSourceRepository struct {
	BaseRepository
}

func newPgxNewsSourceRepository(pool *pgxpool.Pool) portsrepo.NewsSourceRepositoryFacade {
	return &PgxNewsSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NewsSourceRepositoryFacade = (*PgxNewsSourceRepository)(nil)

func (r *PgxNewsSourceRepository) ListActiveSources(ctx context.Context) ([]domain.NewsSource, error) {
	return r.list(ctx, `WHERE is_active ORDER BY display_name`)
}

func (r *PgxNewsSourceRepository) ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error) {
	return r.list(ctx, `WHERE api_source = $1 AND is_active ORDER BY display_name`, apiSource)
}

func (r *PgxNewsSourceRepository) FindSourceByName(ctx context.Context, name string) (*domain.NewsSource, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+newsSourceColumns+` FROM news_sources WHERE name = $1;`, name)
	if err != nil {
		return nil, translateError(err, "find news source")
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanNewsSource)
	if err != nil {
		return nil, translateError(err, "find news source")
	}
	source := mapping.ToDomainNewsSource(m)
	return &source, nil
}

func (r *PgxNewsSourceRepository) SaveSource(ctx context.Context, source domain.NewsSource) error {
	m := mapping.ToModelNewsSource(source)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO news_sources (`+newsSourceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.ID, m.Name, m.DisplayName, m.WebsiteURL, m.APISource, m.IsActive, m.CreatedAt,
	)
	return translateError(err, "save news source")
}

// BulkInsertSources uses CopyFrom into a temp table so duplicate names are skipped.
func (r *PgxNewsSourceRepository) BulkInsertSources(ctx context.Context, sources []domain.NewsSource) (int64, error) {
	if len(sources) == 0 {
		return 0, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `CREATE TEMP TABLE news_sources_import (LIKE news_sources INCLUDING DEFAULTS) ON COMMIT DROP;`); err != nil {
		return 0, translateError(err, "prepare source import")
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"news_sources_import"},
		[]string{"id", "name", "display_name", "website_url", "api_source", "is_active", "created_at"},
		pgx.CopyFromSlice(len(sources), func(i int) ([]any, error) {
			m := mapping.ToModelNewsSource(sources[i])
			return []any{m.ID, m.Name, m.DisplayName, m.WebsiteURL, m.APISource, m.IsActive, m.CreatedAt}, nil
		}),
	)
	if err != nil {
		return 0, translateError(err, "copy sources")
	}
	tag, err := tx.Exec(ctx, `
		INSERT INTO news_sources (`+newsSourceColumns+`)
		SELECT DISTINCT ON (name) `+newsSourceColumns+` FROM news_sources_import
		ON CONFLICT (name) DO NOTHING;`)
	if err != nil {
		return 0, translateError(err, "insert sources")
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxNewsSourceRepository) list(ctx context.Context, tail string, args ...any) ([]domain.NewsSource, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+newsSourceColumns+` FROM news_sources `+tail+`;`, args...)
	if err != nil {
		return nil, translateError(err, "list news sources")
	}
	ms, err := pgx.CollectRows(rows, scanNewsSource)
	if err != nil {
		return nil, translateError(err, "scan news sources")
	}
	out := make([]domain.NewsSource, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainNewsSource(m)
	}
	return out, nil
}

func scanNewsSource(row pgx.CollectableRow) (models.NewsSource, error) {
	var m models.NewsSource
	err := row.Scan(&m.ID, &m.Name, &m.DisplayName, &m.WebsiteURL, &m.APISource, &m.IsActive, &m.CreatedAt)
	return m, err
}
