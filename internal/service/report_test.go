package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"aedmap/internal/domain"
	"aedmap/internal/service"
	"aedmap/pkg/e"

	mock_service "aedmap/internal/service/mocks"
)

func strPtr(s string) *string { return &s }

func TestReportService_Submit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	req := domain.CreateReportRequest{
		ReportType:  domain.ReportDamaged,
		Description: "pads missing from the cabinet",
	}

	repo.EXPECT().
		CreateForAed(gomock.Any(), int64(12), req, gomock.Any()).
		DoAndReturn(func(_ context.Context, aedID int64, r domain.CreateReportRequest, createdAt string) (*domain.Report, error) {
			if _, err := time.Parse(time.RFC3339, createdAt); err != nil {
				t.Errorf("created_at not RFC3339: %q", createdAt)
			}
			return &domain.Report{
				ID:          5,
				AedID:       aedID,
				ReportType:  r.ReportType,
				Description: r.Description,
				CreatedAt:   createdAt,
				Status:      domain.ReportPending,
			}, nil
		}).
		Times(1)

	svc := service.NewReportService(repo, nil, discardLogger())

	got, err := svc.Submit(context.Background(), 12, req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 5 || got.AedID != 12 || got.Status != domain.ReportPending {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestReportService_Submit_UnknownAed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().
		CreateForAed(gomock.Any(), int64(999), gomock.Any(), gomock.Any()).
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewReportService(repo, nil, discardLogger())

	_, err := svc.Submit(context.Background(), 999, domain.CreateReportRequest{
		ReportType:  domain.ReportMissing,
		Description: "unit gone",
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReportService_Submit_InvalidType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repo expectation: the request must be rejected before storage.
	repo := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewReportService(repo, nil, discardLogger())

	_, err := svc.Submit(context.Background(), 12, domain.CreateReportRequest{
		ReportType:  "vandalized",
		Description: "spray paint",
	})
	if !errors.Is(err, e.ErrInvalidReportType) {
		t.Fatalf("expected ErrInvalidReportType, got %v", err)
	}
}

func TestReportService_Submit_InvalidEmail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewReportService(repo, nil, discardLogger())

	_, err := svc.Submit(context.Background(), 12, domain.CreateReportRequest{
		ReportType:    domain.ReportOther,
		Description:   "label faded",
		ReporterEmail: strPtr("not-an-email"),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReportService_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewReportService(repo, nil, discardLogger())

	if err := svc.UpdateStatus(context.Background(), 5, "archived"); !errors.Is(err, e.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestReportService_UpdateStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(5), domain.ReportResolved).Return(nil).Times(1)

	svc := service.NewReportService(repo, nil, discardLogger())

	if err := svc.UpdateStatus(context.Background(), 5, domain.ReportResolved); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReportService_List_InvalidFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewReportService(repo, nil, discardLogger())

	if _, _, err := svc.List(context.Background(), domain.ListReportsRequest{Type: "bogus"}); !errors.Is(err, e.ErrInvalidReportType) {
		t.Fatalf("expected ErrInvalidReportType, got %v", err)
	}
	if _, _, err := svc.List(context.Background(), domain.ListReportsRequest{Status: "bogus"}); !errors.Is(err, e.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestReportService_ListForAed_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().ListByAed(gomock.Any(), int64(3), 0, 20).Return(nil, int64(0), nil).Times(1)

	svc := service.NewReportService(repo, nil, discardLogger())

	if _, _, err := svc.ListForAed(context.Background(), 3, -1, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
