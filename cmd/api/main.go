package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fraudshield/internal/api"
	"fraudshield/internal/api/handlers"
	"fraudshield/internal/config"
	"fraudshield/internal/domain/services"
	"fraudshield/internal/infrastructure/cache"
	"fraudshield/internal/infrastructure/database"
	"fraudshield/internal/infrastructure/database/repository"
	"fraudshield/internal/ocr"
	"fraudshield/internal/streaming"
	"fraudshield/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting FraudShield")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize infrastructure
	db, redisCache := initInfrastructure(ctx, cfg, log)
	defer func() {
		if db != nil {
			db.Close()
		}
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize repositories
	var repos *repository.Repositories
	if db != nil {
		repos = repository.New(db.Pool())
		if err := repos.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create database schema")
		}
		log.Info().Msg("repositories initialized with database")
	} else {
		log.Warn().Msg("running without database - analysis history unavailable")
	}

	// Initialize streaming infrastructure
	var natsPublisher *streaming.NATSPublisher
	if cfg.NATS.Enabled {
		var err error
		natsPublisher, err = streaming.NewNATSPublisher(ctx, cfg.NATS, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to NATS, continuing without alert streaming")
		} else {
			log.Info().Str("url", cfg.NATS.URL).Msg("connected to NATS")
		}
	}

	alertBus := streaming.NewAlertBus(natsPublisher, log)
	defer alertBus.Close()
	log.Info().Bool("nats_enabled", natsPublisher != nil).Msg("alert bus initialized")

	// Initialize OCR extractor for screenshot analysis
	var extractor services.TextExtractor
	if cfg.OCR.Enabled {
		tess := ocr.NewTesseractExtractor(cfg.OCR, log)
		if tess.Available() {
			extractor = tess
			log.Info().Str("languages", cfg.OCR.Languages).Msg("OCR extractor initialized")
		} else {
			log.Warn().Str("binary", cfg.OCR.TesseractPath).Msg("tesseract not found, screenshot analysis disabled")
		}
	}

	// Initialize analyzer service
	analyzer := services.NewAnalyzerService(repos, redisCache, alertBus, cfg.Scoring, log)
	log.Info().
		Int("threat_threshold", cfg.Scoring.ThreatThreshold).
		Int("high_risk_threshold", cfg.Scoring.HighRiskThreshold).
		Msg("analyzer service initialized")

	// Initialize handlers
	deps := handlers.Dependencies{
		Analyzer:  analyzer,
		Extractor: extractor,
		Cache:     redisCache,
		Repos:     repos,
		OCR:       cfg.OCR,
		Logger:    log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// initInfrastructure connects to PostgreSQL and Redis. Both are optional;
// the service degrades to pure scoring when they are unavailable.
func initInfrastructure(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.PostgresDB, *cache.RedisCache) {
	var db *database.PostgresDB
	if cfg.Database.Enabled {
		var err error
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to PostgreSQL, continuing without database")
			db = nil
		}
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		var err error
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}

	return db, redisCache
}
