package service

import (
	"context"
	"log/slog"
	"time"

	"aedmap/internal/domain"
	"aedmap/internal/redis"
	"aedmap/pkg/e"
	"aedmap/pkg/validator"
)

type ReportSvc struct {
	repo   ReportRepository
	cache  *redis.Cache
	logger *slog.Logger
	now    func() time.Time
}

func NewReportService(repo ReportRepository, cache *redis.Cache, logger *slog.Logger) *ReportSvc {
	return &ReportSvc{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Submit records a problem report against one AED. The storage layer flags
// the record in the same transaction; cached query responses that may show
// the stale flag state are invalidated afterwards.
func (s *ReportSvc) Submit(ctx context.Context, aedID int64, req domain.CreateReportRequest) (*domain.Report, error) {
	const op = "service.Report.Submit"

	if !req.ReportType.Valid() {
		return nil, e.ErrInvalidReportType
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrInvalidInput))
	}

	createdAt := s.now().UTC().Format(time.RFC3339)
	report, err := s.repo.CreateForAed(ctx, aedID, req, createdAt)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.cache.DeletePattern(ctx, "aeds:*")
	s.cache.Delete(ctx, redis.Key("stats"))

	s.logger.Info("report submitted",
		slog.Int64("aed_id", aedID),
		slog.Int64("report_id", report.ID),
		slog.String("report_type", string(report.ReportType)),
	)
	return report, nil
}

func (s *ReportSvc) ListForAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAed(ctx, aedID, offset, limit)
}

func (s *ReportSvc) List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error) {
	if req.Type != "" && !req.Type.Valid() {
		return nil, 0, e.ErrInvalidReportType
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, 0, e.ErrInvalidStatus
	}
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

func (s *ReportSvc) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	const op = "service.Report.UpdateStatus"

	if !status.Valid() {
		return e.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return e.Wrap(op, err)
	}
	s.cache.Delete(ctx, redis.Key("stats"))
	return nil
}

func (s *ReportSvc) Delete(ctx context.Context, id int64) error {
	const op = "service.Report.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	s.cache.Delete(ctx, redis.Key("stats"))
	return nil
}
