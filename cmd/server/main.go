package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dojolog/internal/config"
	"dojolog/internal/db"
	"dojolog/internal/handlers"
	"dojolog/internal/logger"
	mw "dojolog/internal/middleware"
	"dojolog/internal/services"
)

type entryStore interface {
	services.EntryStore
	handlers.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	var store entryStore
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; entries are kept in memory and lost on restart")
		store = db.NewMemoryEntryRepository()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbConn, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
		if err != nil {
			cancel()
			log.Fatal("failed to open db", zap.Error(err))
		}
		if err := db.RunMigrations(ctx, dbConn); err != nil {
			cancel()
			log.Fatal("failed migrations", zap.Error(err))
		}
		cancel()
		defer dbConn.Close()
		store = db.NewEntryRepository(dbConn)
	}

	var encSvc *services.EncryptionService
	if cfg.EncryptionSecret == "" {
		log.Warn("ENCRYPTION_SECRET not set; comments are stored as plain text")
	} else {
		encSvc, err = services.NewEncryptionService(cfg.EncryptionSecret)
		if err != nil {
			log.Fatal("failed to init encryption", zap.Error(err))
		}
	}

	entrySvc := services.NewEntryService(store, encSvc, log, cfg.DisplayLocation)
	router := handlers.NewRouter(handlers.RouterConfig{
		Service:        entrySvc,
		Store:          store,
		Auth:           mw.NewAuthMiddleware([]byte(cfg.JWTSecret), log),
		Metrics:        mw.NewMetrics(),
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("server stopped")
}
