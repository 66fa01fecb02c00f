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

	"github.com/Ompatel28102004/travel-saathi/internal/api/handlers/http/admin"
	"github.com/Ompatel28102004/travel-saathi/internal/api/handlers/http/public"
	"github.com/Ompatel28102004/travel-saathi/internal/api/handlers/http/system"
	"github.com/Ompatel28102004/travel-saathi/internal/config"
	"github.com/Ompatel28102004/travel-saathi/internal/metrics"
	"github.com/Ompatel28102004/travel-saathi/internal/middleware"
	"github.com/Ompatel28102004/travel-saathi/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.ZoneCatalog, svc.Tracker, svc.Alerts, svc.Stats, svc.Analysis)
	publicHandler := public.NewHandler(logger, svc.Tracker, svc.Alerts, svc.Analysis)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// RequestID first so it lands in the chi request log
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(metrics.Instrument)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Get("/tourists", adminHandler.AdminTouristList)
			ar.Get("/analysis", adminHandler.AdminAnalysisList)

			ar.Route("/zones", func(zr chi.Router) {
				zr.Post("/", adminHandler.AdminZoneCreate)
				zr.Get("/", adminHandler.AdminZoneList)

				zr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminZoneGet)
					rr.Delete("/", adminHandler.AdminZoneDelete)
					rr.Get("/occupancy", adminHandler.AdminZoneOccupancy)
				})
			})

			ar.Route("/alerts", func(alr chi.Router) {
				alr.Get("/", adminHandler.AdminAlertList)

				alr.Route("/tourist/{touristId}", func(tr chi.Router) {
					tr.Get("/", adminHandler.AdminAlertListByTourist)
					tr.Delete("/", adminHandler.AdminAlertDeleteByTourist)
				})

				alr.Route("/{id}", func(rr chi.Router) {
					rr.Put("/", adminHandler.AdminAlertUpdate)
					rr.Delete("/", adminHandler.AdminAlertDelete)
					rr.Post("/respond", adminHandler.AdminAlertRespond)
					rr.Post("/confirm", adminHandler.AdminAlertConfirm)
					rr.Post("/resolve", adminHandler.AdminAlertResolve)
				})
			})
		})

		// PUBLIC
		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/check", publicHandler.PublicLocationCheck)
		})

		api.Route("/alerts", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/", publicHandler.PublicAlertCreate)
		})

		api.Route("/analysis", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/{touristId}", publicHandler.PublicAnalysisStart)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

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
