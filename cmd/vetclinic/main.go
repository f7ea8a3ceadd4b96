package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vetclinic/vetclinic/internal/app"
	clinicshared "github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/observability"
	"github.com/vetclinic/vetclinic/internal/platform/cache"
	"github.com/vetclinic/vetclinic/internal/platform/db"
	"github.com/vetclinic/vetclinic/internal/shared"
	"github.com/vetclinic/vetclinic/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stdout)

	redisClient, err := cache.New(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	var stores app.Stores
	switch cfg.StoreDriver {
	case app.StoreDriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		stores = app.MemoryStores()
	default:
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		if app.InTestMode() {
			logger.Info("test mode detected, skipping schema migration")
		} else if err := db.Migrate(ctx, pool); err != nil {
			logger.Error("migrate schema", slog.Any("error", err))
			os.Exit(1)
		}
		stores = app.PostgresStores(pool)
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	sessionManager := shared.NewSessionManager(redisClient, "vetclinic_session", cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	pages := &clinicshared.Pages{Logger: logger, Templates: templates, CSRF: csrfManager}

	clinic := app.NewClinic(stores, clinicshared.NewValidator(time.Now))

	router := app.NewRouter(clinic.Routes(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		Pages:          pages,
		SessionManager: sessionManager,
		CSRFManager:    csrfManager,
		Metrics:        observability.NewMetrics(),
		RequestLogging: !cfg.IsProduction(),
	}))

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
