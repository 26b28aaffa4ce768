package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"aedmap/internal/domain"
	"aedmap/internal/redis"
	"aedmap/pkg/e"
)

// refreshTimeout bounds one background refresh run end to end.
const refreshTimeout = 10 * time.Minute

type RefreshSvc struct {
	pipeline Refresher
	repo     AedRepository
	cache    *redis.Cache
	logger   *slog.Logger
	gate     *semaphore.Weighted
}

func NewRefreshService(pipeline Refresher, repo AedRepository, cache *redis.Cache, logger *slog.Logger) *RefreshSvc {
	return &RefreshSvc{
		pipeline: pipeline,
		repo:     repo,
		cache:    cache,
		logger:   logger,
		gate:     semaphore.NewWeighted(1),
	}
}

// Trigger starts a dataset refresh in the background and acknowledges
// immediately. A second trigger while one is running fails fast with
// ErrRefreshRunning; the acknowledged run is detached from the caller's
// request context so a closed connection cannot abort it mid-replace.
func (s *RefreshSvc) Trigger(ctx context.Context) (*domain.RefreshAck, error) {
	if !s.gate.TryAcquire(1) {
		return nil, e.ErrRefreshRunning
	}

	requestID := uuid.New().String()
	s.logger.Info("refresh accepted", slog.String("request_id", requestID))

	go func() {
		defer s.gate.Release(1)

		runCtx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		summary, err := s.pipeline.Run(runCtx)
		if err != nil {
			s.logger.Error("refresh failed",
				slog.String("request_id", requestID),
				slog.Any("error", err),
			)
			return
		}

		s.cache.DeletePattern(runCtx, "aeds:*")
		s.cache.DeletePattern(runCtx, "coverage:*")
		s.cache.Delete(runCtx, redis.Key("stats"))

		s.logger.Info("refresh finished",
			slog.String("request_id", requestID),
			slog.Int64("records_before", summary.RecordsBefore),
			slog.Int64("records_after", summary.RecordsAfter),
			slog.Int("success", summary.Success),
			slog.Int("skipped", summary.Skipped),
			slog.Int("errors", summary.Errors),
		)
	}()

	return &domain.RefreshAck{
		Status:    "accepted",
		Message:   "dataset refresh started",
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// SeedIfEmpty triggers a refresh when the dataset has no records yet,
// so a fresh deployment serves data without a manual admin call.
func (s *RefreshSvc) SeedIfEmpty(ctx context.Context) error {
	const op = "service.Refresh.SeedIfEmpty"

	count, err := s.repo.Count(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if count > 0 {
		s.logger.Info("dataset already seeded", slog.Int64("records", count))
		return nil
	}

	s.logger.Info("dataset empty, seeding")
	if _, err := s.Trigger(ctx); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
