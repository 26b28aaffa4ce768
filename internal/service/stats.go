package service

import (
	"context"
	"log/slog"

	"aedmap/internal/domain"
	"aedmap/internal/redis"
	"aedmap/pkg/e"
)

type StatsSvc struct {
	repo   StatsRepository
	cache  *redis.Cache
	logger *slog.Logger
}

func NewStatsService(repo StatsRepository, cache *redis.Cache, logger *slog.Logger) *StatsSvc {
	return &StatsSvc{repo: repo, cache: cache, logger: logger}
}

func (s *StatsSvc) GetStats(ctx context.Context) (*domain.Stats, error) {
	const op = "service.Stats.GetStats"

	cacheKey := redis.Key("stats")
	var cached domain.Stats
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	aeds, err := s.repo.AedStats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	reports, err := s.repo.ReportStats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stats := &domain.Stats{Aeds: *aeds, Reports: *reports}
	s.cache.Set(ctx, cacheKey, stats)
	s.logger.Debug("stats computed", slog.Int64("aeds", aeds.Total), slog.Int64("reports", reports.Total))
	return stats, nil
}
