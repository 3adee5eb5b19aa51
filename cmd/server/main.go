package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/scottmc500/ScottLMS/internal/config"
	"github.com/scottmc500/ScottLMS/internal/events"
	"github.com/scottmc500/ScottLMS/internal/handler"
	"github.com/scottmc500/ScottLMS/internal/infrastructure/database"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/metrics"
	"github.com/scottmc500/ScottLMS/internal/middleware"
	"github.com/scottmc500/ScottLMS/internal/repository"
	"github.com/scottmc500/ScottLMS/internal/service"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Error reporting
	sentryEnabled := false
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     "scottlms@" + handler.Version,
		})
		if err != nil {
			logger.Setup(cfg.LogLevel)
			logger.Warn("Sentry disabled", slog.String("error", err.Error()))
		} else {
			sentryEnabled = true
			logger.Setup(cfg.LogLevel, logger.NewSentryHandler())
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		logger.Setup(cfg.LogLevel)
	}

	ctx := context.Background()

	// Connect to the configured store
	store, backends, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", err.Error()))
	}
	defer closeStore()

	// Enrollment events
	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsQueue)
		if err != nil {
			logger.Warn("Enrollment events disabled",
				slog.String("error", err.Error()))
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	// Rate limiting
	var rdb *redis.Client
	if cfg.RateLimitEnabled && cfg.RedisURL != "" {
		rdb, err = database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Rate limiting disabled, redis unavailable",
				slog.String("error", err.Error()))
			rdb = nil
		} else {
			defer rdb.Close()
			backends = append(backends, database.RedisPinger{Client: rdb})
		}
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	userService := service.NewUserService(store, v, cfg.StoreTimeout)
	courseService := service.NewCourseService(store, v, cfg.StoreTimeout)
	enrollmentService := service.NewEnrollmentService(store, v, publisher, cfg.StoreTimeout)
	reconciler := service.NewReconciler(store, cfg.StoreTimeout)

	if err := reconciler.Start(cfg.ReconcileSchedule); err != nil {
		logger.Fatal("Failed to start counter reconciler",
			slog.String("schedule", cfg.ReconcileSchedule),
			slog.String("error", err.Error()))
	}

	// Initialize handlers
	api := &handler.API{
		Users:       handler.NewUserHandler(userService),
		Courses:     handler.NewCourseHandler(courseService, enrollmentService, reconciler),
		Enrollments: handler.NewEnrollmentHandler(enrollmentService),
	}
	healthHandler := handler.NewHealthHandler(backends...)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if sentryEnabled {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health and metrics endpoints
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if rdb != nil {
		v1.Use(middleware.RateLimit(rdb, middleware.RateLimits{
			http.MethodGet:    cfg.RateLimitGet,
			http.MethodPost:   cfg.RateLimitPost,
			http.MethodPut:    cfg.RateLimitPut,
			http.MethodDelete: cfg.RateLimitDelete,
		}))
	}
	api.Register(v1)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop background work before draining requests
	logger.Info("Stopping counter reconciler")
	reconciler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// openStore connects the backend selected by cfg.StoreDriver. The returned
// func releases every resource it opened.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, []handler.Pinger, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
		if err != nil {
			return repository.Store{}, nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := database.Migrate(cfg.MigrationsPath, cfg.PostgresDSN()); err != nil {
				pool.Close()
				return repository.Store{}, nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)

		closeFn := func() {
			poolStatsCollector.Stop()
			pool.Close()
		}
		return repository.NewPostgresStore(pool), []handler.Pinger{database.PostgresPinger{Pool: pool}}, closeFn, nil

	case config.StoreDriverMongo:
		client, err := database.NewMongo(ctx, cfg.MongoURL)
		if err != nil {
			return repository.Store{}, nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return repository.Store{}, nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}

		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("MongoDB disconnect error", slog.String("error", err.Error()))
			}
		}
		return repository.NewMongoStore(db), []handler.Pinger{database.MongoPinger{Client: client}}, closeFn, nil
	}
	return repository.Store{}, nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
