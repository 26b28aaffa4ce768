package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"aedmap/internal/domain"
	"aedmap/pkg/e"
)

type StatsRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepository(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepository {
	return &StatsRepository{pool: pool, logger: logger}
}

func (p *StatsRepository) AedStats(ctx context.Context) (*domain.AedStats, error) {
	const op = "postgres.Stats.AedStats"

	stats := &domain.AedStats{ByCategory: map[string]int64{}}

	const totalsQuery = `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE public_use),
			COUNT(*) FILTER (WHERE is_flagged)
		FROM aeds
	`
	if err := p.pool.QueryRow(ctx, totalsQuery).Scan(&stats.Total, &stats.Public, &stats.Flagged); err != nil {
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	stats.Private = stats.Total - stats.Public

	rows, err := p.pool.Query(ctx, `SELECT category, COUNT(*) FROM aeds GROUP BY category`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if category == "" {
			category = "Unknown"
		}
		stats.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}

func (p *StatsRepository) ReportStats(ctx context.Context) (*domain.ReportStats, error) {
	const op = "postgres.Stats.ReportStats"

	stats := &domain.ReportStats{
		ByType:   map[string]int64{},
		ByStatus: map[string]int64{},
	}

	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM aed_reports`).Scan(&stats.Total); err != nil {
		p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := p.groupCount(ctx, op, `SELECT report_type, COUNT(*) FROM aed_reports GROUP BY report_type`, stats.ByType); err != nil {
		return nil, err
	}
	if err := p.groupCount(ctx, op, `SELECT status, COUNT(*) FROM aed_reports GROUP BY status`, stats.ByStatus); err != nil {
		return nil, err
	}

	return stats, nil
}

func (p *StatsRepository) groupCount(ctx context.Context, op, query string, dest map[string]int64) error {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return e.WrapError(ctx, op, err)
		}
		dest[key] = count
	}
	return rows.Err()
}
