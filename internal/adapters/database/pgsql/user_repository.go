package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/models"
	"github.com/SscSPs/news_aggregator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, name, google_id, facebook_id, twitter_id, profile_picture, role, created_at, updated_at, deleted_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a user. Unique violations surface as conflicts naming the field.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (id, email, password_hash, name, google_id, facebook_id, twitter_id, profile_picture, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.Email, m.PasswordHash, m.Name,
		m.GoogleID, m.FacebookID, m.TwitterID, m.ProfilePicture,
		m.Role, m.CreatedAt, m.UpdatedAt,
	)
	return translateError(err, "save user")
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, google_id = $4, facebook_id = $5,
		    twitter_id = $6, profile_picture = $7, role = $8, updated_at = $9
		WHERE id = $10 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Email, m.PasswordHash, m.Name, m.GoogleID, m.FacebookID,
		m.TwitterID, m.ProfilePicture, m.Role, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return translateError(err, "update user")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, m.ID)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "find user by id", `WHERE id = $1 AND deleted_at IS NULL`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find user by email", `WHERE email = $1 AND deleted_at IS NULL`, domain.NormalizeEmail(email))
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	var column string
	switch provider {
	case domain.ProviderGoogle:
		column = "google_id"
	case domain.ProviderFacebook:
		column = "facebook_id"
	case domain.ProviderTwitter:
		column = "twitter_id"
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", apperrors.ErrValidation, provider)
	}
	return r.findOne(ctx, "find user by provider", `WHERE `+column+` = $1 AND deleted_at IS NULL`, providerID)
}

func (r *PgxUserRepository) findOne(ctx context.Context, op, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + where + `;`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.ID, &m.Email, &m.PasswordHash, &m.Name,
		&m.GoogleID, &m.FacebookID, &m.TwitterID, &m.ProfilePicture,
		&m.Role, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		return nil, translateError(err, op)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
