package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"aedmap/internal/api/handlers/http/admin"
	"aedmap/internal/api/handlers/http/public"
	"aedmap/internal/api/handlers/http/system"
	"aedmap/internal/config"
	"aedmap/internal/middleware"
	"aedmap/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, db, cache system.Pinger) *Server {
	publicHandler := public.NewHandler(logger, svc.AedService, svc.CoverageService, svc.ReportService, svc.StatsService)
	adminHandler := admin.NewHandler(logger, svc.RefreshService, svc.ReportService)
	systemHandler := system.NewHandler(logger, db, cache)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(middleware.NewVisitorLimiter(2, 5, 10*time.Minute), logger))

			ar.Post("/refresh", adminHandler.AdminRefresh)

			ar.Route("/reports", func(rr chi.Router) {
				rr.Get("/", adminHandler.AdminReportList)
				rr.Put("/{id}/status", adminHandler.AdminReportUpdateStatus)
				rr.Delete("/{id}", adminHandler.AdminReportDelete)
			})
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(middleware.NewVisitorLimiter(10, 20, 5*time.Minute), logger))

			pr.Route("/aeds", func(ar chi.Router) {
				ar.Get("/", publicHandler.AedList)
				ar.Get("/nearby", publicHandler.AedNearby)

				ar.Route("/{id}", func(ir chi.Router) {
					ir.Get("/", publicHandler.AedGet)
					ir.Post("/report", publicHandler.AedReportSubmit)
					ir.Get("/reports", publicHandler.AedReportList)
				})
			})

			pr.Get("/coverage", publicHandler.CoverageEvaluate)
			pr.Get("/stats", publicHandler.StatsGet)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
