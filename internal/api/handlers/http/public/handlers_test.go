package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"aedmap/internal/api/handlers/http/public"
	mock_public "aedmap/internal/api/handlers/http/public/mocks"
	"aedmap/internal/domain"
	"aedmap/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockAedReader, *mock_public.MockCoverageEvaluator, *mock_public.MockReportSubmitter, *mock_public.MockStatsGetter) {
	aeds := mock_public.NewMockAedReader(ctrl)
	coverage := mock_public.NewMockCoverageEvaluator(ctrl)
	reports := mock_public.NewMockReportSubmitter(ctrl)
	stats := mock_public.NewMockStatsGetter(ctrl)
	h := public.NewHandler(newTestLogger(), aeds, coverage, reports, stats)
	return h, aeds, coverage, reports, stats
}

func TestAedNearby_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, aeds, _, _, _ := newHandler(ctrl)

	want := []*domain.AedWithDistance{
		{Aed: domain.Aed{ID: 1, Name: "Ferry Pier"}, DistanceKm: 0.3, DistanceDisplay: "~300 m"},
	}

	aeds.EXPECT().
		Nearby(gomock.Any(), domain.NearbyRequest{Lat: 22.28, Lng: 114.16, RadiusKm: 2, PublicOnly: true}).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/aeds/nearby?lat=22.28&lng=114.16&radius=2", nil)
	rr := httptest.NewRecorder()

	h.AedNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]json.RawMessage](t, rr)
	var count int
	if err := json.Unmarshal(resp["count"], &count); err != nil || count != 1 {
		t.Fatalf("unexpected count: %s", rr.Body.String())
	}
}

func TestAedNearby_MissingCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/aeds/nearby?lat=22.28", nil)
	rr := httptest.NewRecorder()

	h.AedNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAedNearby_InvalidCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, aeds, _, _, _ := newHandler(ctrl)

	aeds.EXPECT().
		Nearby(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInvalidCoordinates).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/aeds/nearby?lat=120&lng=114.16", nil)
	rr := httptest.NewRecorder()

	h.AedNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAedGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, aeds, _, _, _ := newHandler(ctrl)

	aeds.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, e.ErrNotFound).Times(1)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/aeds/99", nil), "id", "99")
	rr := httptest.NewRecorder()

	h.AedGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAedGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/aeds/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()

	h.AedGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAedReportSubmit_Created_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, reports, _ := newHandler(ctrl)

	wantReq := domain.CreateReportRequest{
		ReportType:  domain.ReportDamaged,
		Description: "cabinet door jammed",
	}

	reports.EXPECT().
		Submit(gomock.Any(), int64(12), wantReq).
		Return(&domain.Report{ID: 7, AedID: 12, ReportType: domain.ReportDamaged, Status: domain.ReportPending}, nil).
		Times(1)

	body := `{"report_type":"damaged","description":"cabinet door jammed"}`
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/aeds/12/report", bytes.NewBufferString(body)), "id", "12")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.AedReportSubmit(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Report](t, rr)
	if got.ID != 7 || got.AedID != 12 {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestAedReportSubmit_UnknownAed_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, reports, _ := newHandler(ctrl)

	reports.EXPECT().
		Submit(gomock.Any(), int64(999), gomock.Any()).
		Return(nil, e.ErrNotFound).
		Times(1)

	body := `{"report_type":"missing","description":"unit gone"}`
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/aeds/999/report", bytes.NewBufferString(body)), "id", "999")
	rr := httptest.NewRecorder()

	h.AedReportSubmit(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAedReportSubmit_InvalidType_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, reports, _ := newHandler(ctrl)

	reports.EXPECT().
		Submit(gomock.Any(), int64(12), gomock.Any()).
		Return(nil, e.ErrInvalidReportType).
		Times(1)

	body := `{"report_type":"vandalized","description":"spray paint"}`
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/aeds/12/report", bytes.NewBufferString(body)), "id", "12")
	rr := httptest.NewRecorder()

	h.AedReportSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAedReportSubmit_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/aeds/12/report", bytes.NewBufferString("{not json")), "id", "12")
	rr := httptest.NewRecorder()

	h.AedReportSubmit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCoverageEvaluate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, coverage, _, _ := newHandler(ctrl)

	coverage.EXPECT().
		Evaluate(gomock.Any(), domain.CoverageRequest{Lat: 22.28, Lng: 114.16, RadiusKm: 5}).
		Return(&domain.CoverageReport{AedCount: 10, Rating: "Poor"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coverage?lat=22.28&lng=114.16&radius=5", nil)
	rr := httptest.NewRecorder()

	h.CoverageEvaluate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	got := decodeJSON[domain.CoverageReport](t, rr)
	if got.Rating != "Poor" {
		t.Fatalf("unexpected rating: %q", got.Rating)
	}
}

func TestAedList_EmptyDataset_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, aeds, _, _, _ := newHandler(ctrl)

	aeds.EXPECT().
		List(gomock.Any(), domain.ListAedsRequest{Limit: 20}).
		Return(nil, int64(0), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/aeds", nil)
	rr := httptest.NewRecorder()

	h.AedList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"aeds":[]`)) {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}
