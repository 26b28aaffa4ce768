package system

import (
	"context"
	"net/http"
	"time"

	"encoding/json"
	"log/slog"
)

// Pinger reports whether one backing component answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	db     Pinger
	cache  Pinger
}

// NewHandler takes the database and cache pingers; cache may be nil when
// Redis is disabled or unreachable at startup.
func NewHandler(logger *slog.Logger, db, cache Pinger) *Handler {
	return &Handler{logger: logger, db: db, cache: cache}
}

// SystemHealth answers 200 while the database is reachable. A dead cache
// only degrades the reported status; a dead database means 503.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	components := map[string]string{}

	if h.db != nil && h.db.Ping(ctx) == nil {
		components["postgres"] = "up"
	} else {
		components["postgres"] = "down"
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	if h.cache != nil && h.cache.Ping(ctx) == nil {
		components["redis"] = "up"
	} else {
		components["redis"] = "down"
		if status == "ok" {
			status = "degraded"
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":     status,
		"components": components,
	}); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
