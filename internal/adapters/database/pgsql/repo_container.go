package pgsql

import (
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		PreferenceRepo:   newPgxPreferenceRepository(dbPool),
		ArticleRepo:      newPgxArticleRepository(dbPool),
		SavedArticleRepo: newPgxSavedArticleRepository(dbPool),
		NewsSourceRepo:   newPgxNewsSourceRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		APILogRepo:       newPgxAPILogRepository(dbPool),
	}
}
