package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/mytheresa/product-catalog/app/config"
	"github.com/mytheresa/product-catalog/app/database"
	"github.com/mytheresa/product-catalog/app/health"
	"github.com/mytheresa/product-catalog/app/logging"
	"github.com/mytheresa/product-catalog/app/server"
	"github.com/mytheresa/product-catalog/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("product-catalog", "info").Fatal("failed to load config", zap.Error(err))
	}

	log := logging.New("product-catalog", cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("application error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("product catalog stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("starting product catalog",
		zap.String("environment", cfg.Environment),
		zap.Int("http_port", cfg.HTTPPort),
	)

	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("database schema migrated")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	healthHandler := health.NewHandler(log)
	healthHandler.Register("database", func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})

	router := server.NewRouter(server.Dependencies{
		Products:   models.NewProductsRepository(db),
		Categories: models.NewCategoriesRepository(db),
		Health:     healthHandler,
		Registry:   registry,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
