package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"rescueHub/internal/api/handlers/http/coordinator"
	"rescueHub/internal/api/handlers/http/sos"
	"rescueHub/internal/api/handlers/http/system"
	"rescueHub/internal/api/ws"
	"rescueHub/internal/config"
	"rescueHub/internal/middleware"
	"rescueHub/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, teams coordinator.TeamLister, gateway *ws.Gateway) *Server {
	sosHandler := sos.NewHandler(logger, svc.Dispatch, svc.Location)
	coordinatorHandler := coordinator.NewHandler(logger, svc.Dispatch, teams)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, sosHandler, coordinatorHandler, systemHandler, gateway, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, sosHandler *sos.Handler, coordinatorHandler *coordinator.Handler, systemHandler *system.Handler, gateway *ws.Gateway, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// SOS: reporter and team actions
		api.Route("/sos", func(sr chi.Router) {
			sr.Use(middleware.ActorID)
			sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			sr.Post("/signal", sosHandler.SendSignal)
			sr.Post("/safe", sosHandler.MarkSafe)
			sr.Post("/accept", sosHandler.Accept)
			sr.Post("/reject", sosHandler.Reject)
			sr.Post("/change-status", sosHandler.ChangeStatus)
			sr.Post("/cancel", sosHandler.Cancel)
			sr.Post("/complete", sosHandler.Complete)
		})

		api.Route("/location", func(lr chi.Router) {
			lr.Use(middleware.ActorID)
			lr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			lr.Post("/ask", sosHandler.AskLocation)
		})

		// COORDINATOR
		api.Route("/coordinator", func(cr chi.Router) {
			cr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			cr.Use(middleware.ActorID)
			cr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			cr.Post("/assign", coordinatorHandler.AssignTeam)
			cr.Get("/cases/{id}", coordinatorHandler.GetCase)
			cr.Get("/teams", coordinatorHandler.ListTeams)
			cr.Get("/stats", coordinatorHandler.Stats)
		})

		// SYSTEM
		api.Get("/health", systemHandler.Health)
		api.Get("/ws", gateway.Handle)
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
		s.logger.Info("🚀 Starting HTTP server",
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
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

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
