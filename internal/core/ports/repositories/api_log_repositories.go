package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// APILogRepositoryFacade stores and aggregates upstream API calls.
type APILogRepositoryFacade interface {
	SaveAPILog(ctx context.Context, log domain.APILog) error

	// FindAPILogsByRange returns logs with created_at in [Start, End], newest first.
	FindAPILogsByRange(ctx context.Context, r domain.APILogRange) ([]domain.APILog, error)

	// AggregateAPILogs groups logs created at or after since by API source.
	AggregateAPILogs(ctx context.Context, since time.Time) ([]domain.APILogStats, error)
}
