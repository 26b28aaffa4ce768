package service

import (
	"context"

	"aedmap/internal/domain"
)

func (s *Service) Submit(ctx context.Context, aedID int64, req domain.CreateReportRequest) (*domain.Report, error) {
	return s.ReportService.Submit(ctx, aedID, req)
}

func (s *Service) ListForAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error) {
	return s.ReportService.ListForAed(ctx, aedID, offset, limit)
}

func (s *Service) ListReports(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error) {
	return s.ReportService.List(ctx, req)
}

func (s *Service) UpdateReportStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	return s.ReportService.UpdateStatus(ctx, id, status)
}

func (s *Service) DeleteReport(ctx context.Context, id int64) error {
	return s.ReportService.Delete(ctx, id)
}
