package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/config"
	"github.com/AlenaMolokova/nationalcode/internal/router"
	"github.com/AlenaMolokova/nationalcode/internal/storage"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	if err := storage.ApplyMigrations(cfg.DatabaseURI, cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
	logger.Info("database migrations applied", zap.String("path", cfg.MigrationsPath))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := storage.NewPool(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	store, err := storage.NewStorage(pool)
	if err != nil {
		logger.Fatal("failed to create storage", zap.Error(err))
	}

	srv := &http.Server{
		Addr: cfg.RunAddr,
		Handler: router.SetupRoutes(store, router.Options{
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
			Logger:    logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.RunAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
