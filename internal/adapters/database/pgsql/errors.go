package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// constraintFields maps unique constraint names to the API field they protect.
var constraintFields = map[string]string{
	"users_email_key":                 "email",
	"users_google_id_key":             "google_id",
	"users_facebook_id_key":           "facebook_id",
	"users_twitter_id_key":            "twitter_id",
	"user_preferences_user_id_key":    "user_id",
	"articles_url_key":                "url",
	"saved_articles_user_article_key": "article_id",
	"news_sources_name_key":           "name",
	"categories_name_key":             "name",
}

// translateError converts driver errors into application errors. Errors it
// does not recognise are wrapped with op for context.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			field := constraintField(pgErr.ConstraintName)
			return apperrors.NewConflictError(fmt.Sprintf("%s already exists", field), field)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s references a missing row", apperrors.ErrNotFound, op)
		case checkViolation:
			return fmt.Errorf("%w: %s violates %s", apperrors.ErrValidation, op, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func constraintField(constraint string) string {
	if f, ok := constraintFields[constraint]; ok {
		return f
	}
	f := strings.TrimSuffix(constraint, "_key")
	if i := strings.Index(f, "_"); i >= 0 {
		f = f[i+1:]
	}
	if f == "" {
		return "resource"
	}
	return f
}
