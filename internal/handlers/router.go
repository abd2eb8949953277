package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	mw "dojolog/internal/middleware"
	"dojolog/internal/services"
)

type RouterConfig struct {
	Service        *services.EntryService
	Store          Pinger
	Auth           *mw.AuthMiddleware
	Metrics        *mw.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(cfg.Auth.Identify)
	r.Use(mw.ZapRequestLogger(logger))

	journalHandler := NewJournalHandler(cfg.Service, cfg.Metrics, logger)
	dashboardHandler := NewDashboardHandler(cfg.Service, logger)

	r.Get("/_debug", Debug)
	if cfg.Store != nil {
		r.Get("/healthz", Health(cfg.Store))
	}
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/entries", dashboardHandler.Get)
		api.Post("/entries", journalHandler.Save)
		api.Post("/entries/delete", journalHandler.Delete)
		api.Delete("/entries/{id}", journalHandler.DeleteByID)
	})

	return r
}
