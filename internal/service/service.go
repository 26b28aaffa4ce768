package service

import (
	"context"

	"aedmap/internal/domain"
	"aedmap/internal/ingest"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type AedService interface {
	List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error)
	Get(ctx context.Context, id int64) (*domain.Aed, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.AedWithDistance, error)
}

type CoverageService interface {
	Evaluate(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageReport, error)
}

type ReportService interface {
	Submit(ctx context.Context, aedID int64, req domain.CreateReportRequest) (*domain.Report, error)
	ListForAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error)
	List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
}

type RefreshService interface {
	Trigger(ctx context.Context) (*domain.RefreshAck, error)
	SeedIfEmpty(ctx context.Context) error
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type AedRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error)
	Get(ctx context.Context, id int64) (*domain.Aed, error)
	FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int, publicOnly bool) ([]*domain.AedWithDistance, error)
	Coverage(ctx context.Context, lat, lng, radiusKm float64) (*domain.CoverageReport, error)
}

type ReportRepository interface {
	CreateForAed(ctx context.Context, aedID int64, req domain.CreateReportRequest, createdAt string) (*domain.Report, error)
	ListByAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error)
	List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
}

type StatsRepository interface {
	AedStats(ctx context.Context) (*domain.AedStats, error)
	ReportStats(ctx context.Context) (*domain.ReportStats, error)
}

// Refresher runs one full dataset replacement. Implemented by ingest.Pipeline.
type Refresher interface {
	Run(ctx context.Context) (*domain.RefreshSummary, error)
}

var _ Refresher = (*ingest.Pipeline)(nil)

type Service struct {
	AedService      AedService
	CoverageService CoverageService
	ReportService   ReportService
	RefreshService  RefreshService
	StatsService    StatsService
}

func NewService(
	aedService AedService,
	coverageService CoverageService,
	reportService ReportService,
	refreshService RefreshService,
	statsService StatsService,
) *Service {
	return &Service{
		AedService:      aedService,
		CoverageService: coverageService,
		ReportService:   reportService,
		RefreshService:  refreshService,
		StatsService:    statsService,
	}
}
