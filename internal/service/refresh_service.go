package service

import (
	"context"

	"aedmap/internal/domain"
)

func (s *Service) TriggerRefresh(ctx context.Context) (*domain.RefreshAck, error) {
	return s.RefreshService.Trigger(ctx)
}

func (s *Service) SeedIfEmpty(ctx context.Context) error {
	return s.RefreshService.SeedIfEmpty(ctx)
}
