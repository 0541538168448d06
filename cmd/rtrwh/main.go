package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/hydranaut/rtrwh-assessment/internal/adapter/http"
	kafkaadapter "github.com/hydranaut/rtrwh-assessment/internal/adapter/kafka"
	"github.com/hydranaut/rtrwh-assessment/internal/adapter/openweather"
	"github.com/hydranaut/rtrwh-assessment/internal/assess"
	"github.com/hydranaut/rtrwh-assessment/internal/config"
	"github.com/hydranaut/rtrwh-assessment/internal/domain"
	"github.com/hydranaut/rtrwh-assessment/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Rainfall lookups are feature-flagged via OPENWEATHER_ENABLED / OPENWEATHER_API_KEY.
	var provider domain.RainfallProvider
	if cfg.OpenWeatherEnabled {
		client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.RainfallTimeout, metrics, logger)
		breaker := openweather.NewBreakerProvider(client, cfg.BreakerThreshold, cfg.BreakerCooldown, logger)
		provider = openweather.NewCachedProvider(breaker, cfg.RainfallCacheSize, cfg.RainfallCacheTTL, metrics)
		metrics.ProviderEnabled.Set(1)
		logger.Info("openweather rainfall lookups enabled",
			"cache_size", cfg.RainfallCacheSize,
			"cache_ttl", cfg.RainfallCacheTTL,
			"timeout", cfg.RainfallTimeout,
		)
	} else {
		logger.Info("openweather rainfall lookups disabled, using default rainfall")
	}

	// Event publishing is optional: no brokers configured means no sink.
	var publisher assess.Publisher
	var writer *kafkaadapter.Writer
	if len(cfg.KafkaBrokers) > 0 {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("assessment event publishing enabled", "topic", cfg.KafkaTopic)
	} else {
		logger.Info("assessment event publishing disabled")
	}

	svc := assess.New(provider, publisher, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
