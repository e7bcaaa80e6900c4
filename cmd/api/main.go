package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roundup-saver/api"
	"roundup-saver/config"
	"roundup-saver/internal/adapter/bank/starling"
	"roundup-saver/internal/adapter/events/kafka"
	httpHandler "roundup-saver/internal/adapter/http/handler"
	"roundup-saver/internal/adapter/metrics"
	"roundup-saver/internal/adapter/storage/memory"
	pgStorage "roundup-saver/internal/adapter/storage/postgres"
	redisStorage "roundup-saver/internal/adapter/storage/redis"
	"roundup-saver/internal/core/ledger"
	"roundup-saver/internal/core/ports"
	"roundup-saver/internal/service"
	"roundup-saver/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("bank_url", cfg.Bank.BaseURL).
		Msg("Starting Round-Up Saver")

	if cfg.Bank.AccessToken == "" {
		log.Warn().Msg("No bank access token configured; every bank call will be rejected")
	}

	ctx := context.Background()

	var (
		goalStore      ports.GoalStore               = memory.NewGoalStore()
		rateLimitStore ports.RateLimitStore          = memory.NewRateLimitStore()
		auditRepo      ports.TransferAuditRepository = memory.NewTransferAuditRepo()
		events         ports.EventPublisher
		healthCheckers []ports.HealthChecker
	)

	// Optional PostgreSQL: transfer audit trail
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database schema")
		}
		log.Info().Msg("PostgreSQL connected")

		auditRepo = pgStorage.NewTransferAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	} else {
		log.Info().Msg("PostgreSQL disabled, transfer history kept in memory")
	}

	// Optional Redis: goal references and rate-limit counters
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		goalStore = redisStorage.NewGoalStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Redis disabled, goal references and rate limits kept in memory")
	}

	// Optional Kafka: roundup.transferred events
	if cfg.Events.Enabled {
		publisher := kafka.NewPublisher(cfg.Events, log)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close event publisher")
			}
		}()
		events = publisher
		log.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("Event publishing enabled")
	}

	recorder := metrics.New()

	// The ledger lives for the process and is shared by every request.
	transferLedger := ledger.New()

	bank := starling.NewClient(cfg.Bank, nil, recorder, logger.Component(log, "starling"))

	roundUpSvc := service.NewRoundUpService(
		bank,
		transferLedger,
		goalStore,
		auditRepo,
		events,
		recorder,
		cfg.RoundUp.GoalName,
		logger.Component(log, "roundup"),
	)
	accountSvc := service.NewAccountService(bank, logger.Component(log, "accounts"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		RoundUpSvc:     roundUpSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Metrics:        recorder,
		OpenAPISpec:    api.OpenAPI,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
