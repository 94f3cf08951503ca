package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/depredict/internal/config"
	"github.com/stemsi/depredict/internal/database"
	"github.com/stemsi/depredict/internal/handler"
	"github.com/stemsi/depredict/internal/logger"
	"github.com/stemsi/depredict/internal/middleware"
	"github.com/stemsi/depredict/internal/predictor"
	"github.com/stemsi/depredict/internal/repository"
	"github.com/stemsi/depredict/internal/router"
	"github.com/stemsi/depredict/internal/service"
	"github.com/stemsi/depredict/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Depression Predictor")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Load Classifier Artifact ──────────────────────────────────────
	// A missing or corrupt artifact does not stop the server: every
	// prediction then fails with an inference error and /health is degraded.
	classifier, err := predictor.LoadClassifier(cfg.ModelPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.ModelPath).Msg("Failed to load classifier artifact")
	} else {
		log.Info().Str("path", cfg.ModelPath).Str("version", classifier.Version()).Msg("Classifier loaded")
	}

	// ─── Connect to Redis (optional prediction cache) ──────────────────
	var cache service.PredictionCache
	if cfg.CacheEnabled() {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, prediction cache disabled")
		} else {
			defer rdb.Close()
			cache = repository.NewPredictionCacheRepository(rdb)
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	predictionService := service.NewPredictionService(classifier, cache, cfg.PredictionCacheTTL, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Prediction: handler.NewPredictionHandler(predictionService),
		Page:       handler.NewPageHandler(predictionService, log),
		System:     handler.NewSystemHandler(predictionService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		defer limiter.Stop()
	}
	r := router.SetupRouter(handlers, limiter, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
