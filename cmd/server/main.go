package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finflow/finflow/internal/adapter/http"
	"github.com/finflow/finflow/internal/adapter/http/handler"
	postgresRepo "github.com/finflow/finflow/internal/adapter/repository/postgres"
	redisRepo "github.com/finflow/finflow/internal/adapter/repository/redis"
	"github.com/finflow/finflow/internal/infrastructure/config"
	"github.com/finflow/finflow/internal/infrastructure/logger"
	"github.com/finflow/finflow/internal/infrastructure/metrics"
	"github.com/finflow/finflow/internal/infrastructure/postgres"
	"github.com/finflow/finflow/internal/infrastructure/redis"
	"github.com/finflow/finflow/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Run migrations
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	templateRepo := postgresRepo.NewTemplateRepository(pool)
	occurrenceRepo := postgresRepo.NewOccurrenceRepository(pool)
	runLock := redisRepo.NewRunLock(redisClient)
	retrier := postgresRepo.NewRetrier(appLogger)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	templateUC := usecase.NewTemplateUseCase(templateRepo, idGen)
	occurrenceUC := usecase.NewOccurrenceUseCase(occurrenceRepo)
	materializeUC := usecase.NewMaterializeUseCase(
		txManager,
		templateRepo,
		occurrenceRepo,
		idGen,
		runLock,
		retrier,
		appLogger,
		cfg.MaterializeWorkers,
		cfg.MaterializeLockTTL,
	)

	// Initialize handlers
	appMetrics := metrics.New()
	templateHandler := handler.NewTemplateHandler(templateUC)
	materializeHandler := handler.NewMaterializeHandler(materializeUC, appMetrics)
	occurrenceHandler := handler.NewOccurrenceHandler(occurrenceUC, appMetrics)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TemplateHandler:    templateHandler,
		MaterializeHandler: materializeHandler,
		OccurrenceHandler:  occurrenceHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
