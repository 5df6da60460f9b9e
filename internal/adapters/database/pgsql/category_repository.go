package pgsql

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, display_name, created_at FROM categories ORDER BY display_name;`)
	if err != nil {
		return nil, translateError(err, "list categories")
	}
	cats, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Category])
	if err != nil {
		return nil, translateError(err, "scan categories")
	}
	return cats, nil
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, display_name, created_at FROM categories WHERE name = $1;`, name)
	if err != nil {
		return nil, translateError(err, "find category")
	}
	cat, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[domain.Category])
	if err != nil {
		return nil, translateError(err, "find category")
	}
	return &cat, nil
}

func (r *PgxCategoryRepository) FindCategoriesByNames(ctx context.Context, names []string) ([]domain.Category, error) {
	if len(names) == 0 {
		return []domain.Category{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT id, name, display_name, created_at FROM categories WHERE name = ANY($1);`, names)
	if err != nil {
		return nil, translateError(err, "find categories")
	}
	cats, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Category])
	if err != nil {
		return nil, translateError(err, "scan categories")
	}
	return cats, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO categories (id, name, display_name, created_at) VALUES ($1, $2, $3, $4);`,
		category.ID, category.Name, category.DisplayName, category.CreatedAt,
	)
	return translateError(err, "save category")
}
