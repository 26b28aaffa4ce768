package service

import (
	"context"
	"log/slog"
	"math"

	"aedmap/internal/domain"
	"aedmap/internal/redis"
	"aedmap/pkg/e"
)

const defaultCoverageRadiusKm = 5.0

type CoverageSvc struct {
	repo   AedRepository
	cache  *redis.Cache
	logger *slog.Logger
}

func NewCoverageService(repo AedRepository, cache *redis.Cache, logger *slog.Logger) *CoverageSvc {
	return &CoverageSvc{repo: repo, cache: cache, logger: logger}
}

// Evaluate summarizes AED availability inside a circle: counts, density over
// the planar pi*r^2 area, distance statistics and a qualitative rating.
func (s *CoverageSvc) Evaluate(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageReport, error) {
	const op = "service.Coverage.Evaluate"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultCoverageRadiusKm
	}
	if req.RadiusKm <= 0 || req.RadiusKm > maxRadiusKm {
		return nil, e.ErrInvalidRadius
	}

	cacheKey := redis.Key("coverage", req.Lat, req.Lng, req.RadiusKm)
	var cached domain.CoverageReport
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	report, err := s.repo.Coverage(ctx, req.Lat, req.Lng, req.RadiusKm)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	report.Lat = req.Lat
	report.Lng = req.Lng
	report.RadiusKm = req.RadiusKm
	report.AreaSqKm = math.Pi * req.RadiusKm * req.RadiusKm
	report.PrivateAeds = report.AedCount - report.PublicAeds
	if report.AreaSqKm > 0 {
		report.DensityPerKm = float64(report.AedCount) / report.AreaSqKm
	}
	report.Rating = CoverageRating(report.DensityPerKm, report.AedCount)

	s.cache.Set(ctx, cacheKey, report)
	s.logger.Info("coverage evaluated",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_km", req.RadiusKm),
		slog.Int64("aed_count", report.AedCount),
		slog.String("rating", report.Rating),
	)
	return report, nil
}

// CoverageRating maps AED density (units per square km) to a label.
func CoverageRating(densityPerKm float64, count int64) string {
	switch {
	case count == 0:
		return "No Coverage"
	case densityPerKm >= 2.0:
		return "Excellent"
	case densityPerKm >= 1.0:
		return "Good"
	case densityPerKm >= 0.5:
		return "Moderate"
	default:
		return "Poor"
	}
}
