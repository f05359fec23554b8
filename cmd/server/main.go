package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/internal/config"
	themeRepo "anoa.com/socialfeed/internal/modules/theme/repository"
	"anoa.com/socialfeed/internal/server"
	"anoa.com/socialfeed/pkg/database"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefs, closeStore, err := openPreferenceStore(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to open preference store")
	}
	defer closeStore()

	srv, err := server.NewServer(ctx, cfg, prefs)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to build server")
	}

	// Screens render light until the stored preference arrives.
	go srv.Store().Load(ctx)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.WithField("addr", httpServer.Addr).Info("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("server exited with error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("graceful shutdown failed")
	}

	// Let queued theme writes land before the store closes.
	srv.Store().Wait()
}

func openPreferenceStore(ctx context.Context, cfg *config.Config) (themeRepo.PreferenceRepository, func(), error) {
	switch cfg.PreferenceStore {
	case config.PreferenceStoreRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Log.Info("theme preference stored in redis")
		return themeRepo.NewRedisRepository(client), func() { _ = client.Close() }, nil

	case config.PreferenceStorePostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := bootstrap.Migrate(db); err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		logger.Log.Info("theme preference stored in postgres")
		return themeRepo.NewPostgresRepository(db), closeDB, nil

	default:
		logger.Log.Warn("theme preference kept in memory; it resets on restart")
		return themeRepo.NewMemoryRepository(), func() {}, nil
	}
}
