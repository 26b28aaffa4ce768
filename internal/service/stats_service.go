package service

import (
	"context"

	"aedmap/internal/domain"
)

func (s *Service) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.StatsService.GetStats(ctx)
}
