package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"costmap/server/config"
	"costmap/server/internal/api"
	"costmap/server/internal/citydata"
	"costmap/server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		logrus.WithError(err).Fatal("Failed to load .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	records, err := config.ResolveDataset(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load city dataset")
	}
	if cfg.Dataset.Path != "" {
		logger.Infof("Using city dataset at: %s", cfg.Dataset.Path)
	}

	store, err := citydata.NewStore(records, citydata.WithMissHook(api.NewMissHook(logger, metrics)))
	if err != nil {
		logger.WithError(err).Fatal("Failed to build city store")
	}
	logger.WithField("cities", store.Len()).Info("City store ready")

	gin.SetMode(cfg.Server.Mode)
	handler := api.NewHandler(store, logger, metrics, cfg.Calculator.DefaultSalary)
	router := api.NewRouter(cfg, handler, metrics, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	logger.Info("Server stopped")
}
