package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"aedmap/internal/config"
	"aedmap/pkg/e"
)

type Postgres struct {
	Pool    *pgxpool.Pool
	Aeds    *AedRepository
	Reports *ReportRepository
	Stat    *StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.EnsureSchema", err)
	}

	pg := &Postgres{
		Pool:    pool,
		Aeds:    NewAedRepository(pool, logger),
		Reports: NewReportRepository(pool, logger),
		Stat:    NewStatsRepository(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS postgis`,
		`CREATE TABLE IF NOT EXISTS aeds (
			id                BIGSERIAL PRIMARY KEY,
			name              TEXT NOT NULL DEFAULT '',
			address           TEXT NOT NULL DEFAULT '',
			location_detail   TEXT NOT NULL DEFAULT '',
			latitude          DOUBLE PRECISION NOT NULL,
			longitude         DOUBLE PRECISION NOT NULL,
			public_use        BOOLEAN NOT NULL DEFAULT FALSE,
			allowed_operators TEXT NOT NULL DEFAULT '',
			access_persons    TEXT NOT NULL DEFAULT '',
			category          TEXT NOT NULL DEFAULT '',
			service_hours     TEXT NOT NULL DEFAULT '',
			brand             TEXT NOT NULL DEFAULT '',
			model             TEXT NOT NULL DEFAULT '',
			remark            TEXT NOT NULL DEFAULT '',
			is_flagged        BOOLEAN NOT NULL DEFAULT FALSE,
			flag_reason       TEXT,
			flagged_at        TEXT,
			geo_point         geography(Point, 4326) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aeds_geo_point ON aeds USING GIST (geo_point)`,
		`CREATE TABLE IF NOT EXISTS aed_reports (
			id             BIGSERIAL PRIMARY KEY,
			aed_id         BIGINT NOT NULL,
			report_type    TEXT NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			reporter_name  TEXT,
			reporter_email TEXT,
			reporter_phone TEXT,
			created_at     TEXT NOT NULL,
			status         TEXT NOT NULL DEFAULT 'pending'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aed_reports_aed_id ON aed_reports (aed_id)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
