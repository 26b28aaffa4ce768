package postgres

import (
	"context"

	"aedmap/internal/domain"
	"aedmap/internal/ingest"
)

type AedStorage interface {
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, load func(ctx context.Context, w ingest.BatchWriter) error) error
	List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error)
	Get(ctx context.Context, id int64) (*domain.Aed, error)
	FindNearby(ctx context.Context, lat, lng, radiusKm float64, limit int, publicOnly bool) ([]*domain.AedWithDistance, error)
	Coverage(ctx context.Context, lat, lng, radiusKm float64) (*domain.CoverageReport, error)
}

type ReportStorage interface {
	CreateForAed(ctx context.Context, aedID int64, req domain.CreateReportRequest, createdAt string) (*domain.Report, error)
	ListByAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error)
	List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
}

type StatsStorage interface {
	AedStats(ctx context.Context) (*domain.AedStats, error)
	ReportStats(ctx context.Context) (*domain.ReportStats, error)
}

func (p *Postgres) AedRepo() AedStorage       { return p.Aeds }
func (p *Postgres) ReportRepo() ReportStorage { return p.Reports }
func (p *Postgres) StatsRepo() StatsStorage   { return p.Stat }
