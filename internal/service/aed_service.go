package service

import (
	"context"

	"aedmap/internal/domain"
)

func (s *Service) List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error) {
	return s.AedService.List(ctx, req)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Aed, error) {
	return s.AedService.Get(ctx, id)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.AedWithDistance, error) {
	return s.AedService.Nearby(ctx, req)
}
