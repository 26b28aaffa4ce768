package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"aedmap/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AedReader interface {
	List(ctx context.Context, req domain.ListAedsRequest) ([]*domain.Aed, int64, error)
	Get(ctx context.Context, id int64) (*domain.Aed, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.AedWithDistance, error)
}

type CoverageEvaluator interface {
	Evaluate(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageReport, error)
}

type ReportSubmitter interface {
	Submit(ctx context.Context, aedID int64, req domain.CreateReportRequest) (*domain.Report, error)
	ListForAed(ctx context.Context, aedID int64, offset, limit int) ([]*domain.Report, int64, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type Handler struct {
	logger   *slog.Logger
	Aeds     AedReader
	Coverage CoverageEvaluator
	Reports  ReportSubmitter
	Stats    StatsGetter
}

func NewHandler(logger *slog.Logger, aeds AedReader, coverage CoverageEvaluator, reports ReportSubmitter, stats StatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Aeds:     aeds,
		Coverage: coverage,
		Reports:  reports,
		Stats:    stats,
	}
}

func (h *Handler) AedList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AedList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	req := domain.ListAedsRequest{
		Offset: parseInt(q.Get("offset"), 0),
		Limit:  parseInt(q.Get("limit"), 20),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	}

	aeds, total, err := h.Aeds.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if aeds == nil {
		aeds = []*domain.Aed{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"aeds":       aeds,
		"pagination": buildPage(r, total, req.Limit, req.Offset),
	})
}

func (h *Handler) AedGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	aed, err := h.Aeds.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, aed)
}

func (h *Handler) AedNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AedNearby", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	lat, latOK := parseFloat(q.Get("lat"))
	lng, lngOK := parseFloat(q.Get("lng"))
	if !latOK || !lngOK {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required"})
		return
	}

	radius, _ := parseFloat(q.Get("radius"))
	req := domain.NearbyRequest{
		Lat:        lat,
		Lng:        lng,
		RadiusKm:   radius,
		Limit:      parseInt(q.Get("limit"), 0),
		PublicOnly: parseBool(q.Get("public_only"), true),
	}

	aeds, err := h.Aeds.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if aeds == nil {
		aeds = []*domain.AedWithDistance{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"aeds":  aeds,
		"count": len(aeds),
	})
}

func (h *Handler) AedReportSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreateReportRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Reports.Submit(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created",
		slog.Int64("aed_id", id),
		slog.Int64("report_id", report.ID),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) AedReportList(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	offset := parseInt(q.Get("offset"), 0)
	limit := parseInt(q.Get("limit"), 20)

	reports, total, err := h.Reports.ListForAed(r.Context(), id, offset, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if reports == nil {
		reports = []*domain.Report{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports":    reports,
		"pagination": buildPage(r, total, limit, offset),
	})
}

func (h *Handler) CoverageEvaluate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CoverageEvaluate", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	lat, latOK := parseFloat(q.Get("lat"))
	lng, lngOK := parseFloat(q.Get("lng"))
	if !latOK || !lngOK {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required"})
		return
	}
	radius, _ := parseFloat(q.Get("radius"))

	report, err := h.Coverage.Evaluate(r.Context(), domain.CoverageRequest{Lat: lat, Lng: lng, RadiusKm: radius})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) StatsGet(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
