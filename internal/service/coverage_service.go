package service

import (
	"context"

	"aedmap/internal/domain"
)

func (s *Service) Evaluate(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageReport, error) {
	return s.CoverageService.Evaluate(ctx, req)
}
