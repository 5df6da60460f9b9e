package pgsql

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/models"
	"github.com/SscSPs/news_aggregator_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const preferenceColumns = `id, user_id, preferred_sources, preferred_categories, preferred_authors, created_at, updated_at`

type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(pool *pgxpool.Pool) portsrepo.PreferenceRepositoryFacade {
	return &PgxPreferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)

// GetOrCreate inserts an empty row when none exists. Concurrent first reads
// race on the user_id unique constraint and both read the winning row.
func (r *PgxPreferenceRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Preference, error) {
	insert := `
		INSERT INTO user_preferences (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, insert, uuid.NewString(), userID); err != nil {
		return nil, translateError(err, "create preferences")
	}

	query := `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = $1;`
	return scanPreference(r.Pool.QueryRow(ctx, query, userID), "get preferences")
}

// Upsert replaces all three lists for pref.UserID.
func (r *PgxPreferenceRepository) Upsert(ctx context.Context, pref domain.Preference) (*domain.Preference, error) {
	m := mapping.ToModelPreference(pref)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	query := `
		INSERT INTO user_preferences (id, user_id, preferred_sources, preferred_categories, preferred_authors, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_sources = EXCLUDED.preferred_sources,
			preferred_categories = EXCLUDED.preferred_categories,
			preferred_authors = EXCLUDED.preferred_authors,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + preferenceColumns + `;
	`
	row := r.Pool.QueryRow(ctx, query, m.ID, m.UserID, m.PreferredSources, m.PreferredCategories, m.PreferredAuthors, m.UpdatedAt)
	return scanPreference(row, "save preferences")
}

func scanPreference(row pgx.Row, op string) (*domain.Preference, error) {
	var m models.Preference
	err := row.Scan(&m.ID, &m.UserID, &m.PreferredSources, &m.PreferredCategories, &m.PreferredAuthors, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, translateError(err, op)
	}
	pref := mapping.ToDomainPreference(m)
	return &pref, nil
}
