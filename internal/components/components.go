package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"aedmap/internal/api"
	"aedmap/internal/api/handlers/http/system"
	"aedmap/internal/config"
	"aedmap/internal/ingest"
	"aedmap/internal/redis"
	"aedmap/internal/service"
	"aedmap/internal/storage/postgres"
	"aedmap/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Service    *service.Service
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	// Redis is best-effort: the API must answer even when the cache is
	// down, so a failed init degrades to cacheless operation.
	var redisClient *redis.Redis
	if cfg.Cache.Disabled {
		logger.Info("Cache disabled by config")
	} else {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", slog.Any("error", err))
			redisClient = nil
		}
	}
	cache := redis.NewCache(redisClient, cfg.Cache.TTL, logger)

	fetcher := ingest.NewFetcher(cfg.Feed, logger)
	pipeline := ingest.NewPipeline(fetcher, storage.Aeds, cfg.Feed.BatchSize, logger)

	aedSvc := service.NewAedService(storage.AedRepo(), cache, logger)
	coverageSvc := service.NewCoverageService(storage.AedRepo(), cache, logger)
	reportSvc := service.NewReportService(storage.ReportRepo(), cache, logger)
	refreshSvc := service.NewRefreshService(pipeline, storage.AedRepo(), cache, logger)
	statsSvc := service.NewStatsService(storage.StatsRepo(), cache, logger)

	srv := service.NewService(aedSvc, coverageSvc, reportSvc, refreshSvc, statsSvc)

	var cachePinger system.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}

	httpServer := api.NewServer(cfg, logger, srv, storage.Pool, cachePinger)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Service:    srv,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
