package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPILogRepository struct {
	BaseRepository
}

func newPgxAPILogRepository(pool *pgxpool.Pool) portsrepo.APILogRepositoryFacade {
	return &PgxAPILogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.APILogRepositoryFacade = (*PgxAPILogRepository)(nil)

func (r *PgxAPILogRepository) SaveAPILog(ctx context.Context, log domain.APILog) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO api_logs (id, api_source, endpoint, status_code, response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		log.ID, log.APISource, log.Endpoint, log.StatusCode, log.ResponseTimeMs, log.CreatedAt,
	)
	return translateError(err, "save api log")
}

func (r *PgxAPILogRepository) FindAPILogsByRange(ctx context.Context, rng domain.APILogRange) ([]domain.APILog, error) {
	query := `
		SELECT id, api_source, endpoint, status_code, response_time_ms, created_at
		FROM api_logs
		WHERE created_at >= $1 AND created_at <= $2 AND ($3 = '' OR api_source = $3)
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, rng.Start, rng.End, rng.APISource)
	if err != nil {
		return nil, translateError(err, "list api logs")
	}
	logs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.APILog])
	if err != nil {
		return nil, translateError(err, "scan api logs")
	}
	return logs, nil
}

// AggregateAPILogs reads the average as text so it keeps full numeric precision.
func (r *PgxAPILogRepository) AggregateAPILogs(ctx context.Context, since time.Time) ([]domain.APILogStats, error) {
	query := `
		SELECT api_source, COUNT(*), AVG(response_time_ms)::text, MAX(response_time_ms)
		FROM api_logs
		WHERE created_at >= $1
		GROUP BY api_source
		ORDER BY COUNT(*) DESC, api_source;
	`
	rows, err := r.Pool.Query(ctx, query, since)
	if err != nil {
		return nil, translateError(err, "aggregate api logs")
	}
	stats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.APILogStats, error) {
		var s domain.APILogStats
		var avg string
		err := row.Scan(&s.APISource, &s.RequestCount, &avg, &s.MaxResponseTimeMs)
		s.AvgResponseTimeMs = utils.ParseDecimalOrZero(avg)
		return s, err
	})
	if err != nil {
		return nil, translateError(err, "scan api log stats")
	}
	return stats, nil
}
