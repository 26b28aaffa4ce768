package service

import (
	"context"
	"log/slog"

	"aedmap/internal/domain"
	"aedmap/internal/geo"
	"aedmap/internal/redis"
	"aedmap/pkg/e"
)

const (
	defaultNearbyRadiusKm = 1.0
	defaultNearbyLimit    = 50
	maxNearbyLimit        = 200
	maxRadiusKm           = 100.0
)

type AedSvc struct {
	repo   AedRepository
	cache  *redis.Cache
	logger *slog.Logger
}

func NewAedService(repo AedRepository, cache *redis.Cache, logger *slog.Logger) *AedSvc {
	return &AedSvc{repo: repo, cache: cache, logger: logger}
}

func (s *AedSvc) List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return s.repo.List(ctx, req)
}

func (s *AedSvc) Get(ctx context.Context, id int64) (*domain.Aed, error) {
	return s.repo.Get(ctx, id)
}

// Nearby resolves a proximity query. Results come back from PostGIS already
// ordered by distance; this layer applies the defaults, the bounds checks
// and the human-readable distance label.
func (s *AedSvc) Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.AedWithDistance, error) {
	const op = "service.Aed.Nearby"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return nil, e.ErrInvalidCoordinates
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultNearbyRadiusKm
	}
	if req.RadiusKm <= 0 || req.RadiusKm > maxRadiusKm {
		return nil, e.ErrInvalidRadius
	}
	if req.Limit <= 0 {
		req.Limit = defaultNearbyLimit
	}
	if req.Limit > maxNearbyLimit {
		req.Limit = maxNearbyLimit
	}

	cacheKey := redis.Key("aeds", "nearby", req.Lat, req.Lng, req.RadiusKm, req.Limit, req.PublicOnly)
	var cached []*domain.AedWithDistance
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	results, err := s.repo.FindNearby(ctx, req.Lat, req.Lng, req.RadiusKm, req.Limit, req.PublicOnly)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, r := range results {
		r.DistanceDisplay = geo.FormatDistance(r.DistanceKm)
	}

	s.cache.Set(ctx, cacheKey, results)
	s.logger.Info("nearby query done",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_km", req.RadiusKm),
		slog.Int("found", len(results)),
	)
	return results, nil
}
