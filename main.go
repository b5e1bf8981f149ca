package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"salon/config"
	_ "salon/docs"
	"salon/internal/repository"
	"salon/internal/service"
	"salon/internal/storage"
	"salon/internal/transport/rest"
	"salon/internal/transport/websocket"
	"salon/pkg/auth"
	"salon/pkg/cache"
	"salon/pkg/database"
	"salon/pkg/logger"
	"salon/pkg/telemetry"
	"salon/pkg/validator"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Salon Booking API
// @version 1.0
// @description Availability and booking API for a beauty salon

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("failed to load configuration", zap.Error(err))
	}

	log, err := logger.NewLogger(cfg.Name, cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Name, cfg.Version, cfg.Telemetry)
	if err != nil {
		log.Fatal("failed to set up telemetry", zap.Error(err))
	}

	if err := validator.RegisterBindings(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := database.NewPostgresDB(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations")
	if err := database.RunMigrations(ctx, db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("migrations applied")

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialise S3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 storage initialised", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 storage is not configured, photo uploads are disabled")
	}

	var limiter rest.BookingLimiter
	if cfg.RateLimit.Enabled && cfg.Redis.Host != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		switch {
		case err == nil:
			defer rdb.Close()
			limiter = cache.NewRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, "salon:ratelimit:booking:")
			log.Info("booking rate limit enabled",
				zap.Int("limit", cfg.RateLimit.Limit),
				zap.Duration("window", cfg.RateLimit.Window),
			)
		case cfg.RateLimit.FailOpen:
			log.Warn("redis unavailable, booking rate limit disabled", zap.Error(err))
		default:
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
	}

	hub := websocket.NewAgendaHub(log)
	go hub.Run(ctx)

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Notifier:    hub,
	})

	handler := rest.NewHandler(services, log, cfg, auth.NewVerifier(cfg.JWT.SigningKey), limiter, hub)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        otelhttp.NewHandler(router, cfg.Name),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("addr", srv.Addr),
		zap.String("timezone", cfg.Booking.Timezone),
		zap.Int("slot_interval_minutes", cfg.Booking.SlotIntervalMinutes),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	cancel()

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error("telemetry shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
