package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"aedmap/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RefreshTrigger interface {
	Trigger(ctx context.Context) (*domain.RefreshAck, error)
}

type ReportModerator interface {
	List(ctx context.Context, req domain.ListReportsRequest) ([]*domain.Report, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	logger  *slog.Logger
	Refresh RefreshTrigger
	Reports ReportModerator
}

func NewHandler(logger *slog.Logger, refresh RefreshTrigger, reports ReportModerator) *Handler {
	return &Handler{
		logger:  logger,
		Refresh: refresh,
		Reports: reports,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AdminRefresh kicks off a dataset refresh and answers 202 with the job id.
func (h *Handler) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Info("refresh requested", slog.String("remote", r.RemoteAddr))

	ack, err := h.Refresh.Trigger(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusAccepted, ack)
}

func (h *Handler) AdminReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReportList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	req := domain.ListReportsRequest{
		Type:   domain.ReportType(q.Get("report_type")),
		Status: domain.ReportStatus(q.Get("status")),
		Offset: parseInt(q.Get("offset"), 0),
		Limit:  parseInt(q.Get("limit"), 20),
	}

	reports, total, err := h.Reports.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if reports == nil {
		reports = []*domain.Report{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"total":   total,
		"limit":   req.Limit,
		"offset":  req.Offset,
	})
}

func (h *Handler) AdminReportUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status domain.ReportStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Reports.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status updated", slog.Int64("id", id), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminReportDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Reports.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report deleted", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
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
