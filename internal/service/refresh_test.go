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

func TestRefreshService_Trigger_AcksAndRuns(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mock_service.NewMockRefresher(ctrl)
	repo := mock_service.NewMockAedRepository(ctrl)

	done := make(chan struct{})
	pipeline.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.RefreshSummary, error) {
			defer close(done)
			return &domain.RefreshSummary{RecordsAfter: 10, Success: 10}, nil
		}).
		Times(1)

	svc := service.NewRefreshService(pipeline, repo, nil, discardLogger())

	ack, err := svc.Trigger(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ack.Status != "accepted" {
		t.Errorf("expected accepted, got %q", ack.Status)
	}
	if ack.RequestID == "" {
		t.Error("request id empty")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline run never started")
	}
}

func TestRefreshService_Trigger_RejectsConcurrent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mock_service.NewMockRefresher(ctrl)
	repo := mock_service.NewMockAedRepository(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	pipeline.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.RefreshSummary, error) {
			close(started)
			<-release
			return &domain.RefreshSummary{}, nil
		}).
		Times(1)

	svc := service.NewRefreshService(pipeline, repo, nil, discardLogger())

	if _, err := svc.Trigger(context.Background()); err != nil {
		t.Fatalf("first trigger failed: %v", err)
	}
	<-started

	if _, err := svc.Trigger(context.Background()); !errors.Is(err, e.ErrRefreshRunning) {
		t.Fatalf("expected ErrRefreshRunning, got %v", err)
	}
	close(release)
}

func TestRefreshService_SeedIfEmpty_SkipsWhenPopulated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mock_service.NewMockRefresher(ctrl)
	repo := mock_service.NewMockAedRepository(ctrl)
	repo.EXPECT().Count(gomock.Any()).Return(int64(1200), nil).Times(1)

	svc := service.NewRefreshService(pipeline, repo, nil, discardLogger())

	if err := svc.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRefreshService_SeedIfEmpty_TriggersWhenEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mock_service.NewMockRefresher(ctrl)
	repo := mock_service.NewMockAedRepository(ctrl)
	repo.EXPECT().Count(gomock.Any()).Return(int64(0), nil).Times(1)

	done := make(chan struct{})
	pipeline.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.RefreshSummary, error) {
			defer close(done)
			return &domain.RefreshSummary{}, nil
		}).
		Times(1)

	svc := service.NewRefreshService(pipeline, repo, nil, discardLogger())

	if err := svc.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("seed never ran the pipeline")
	}
}
