package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/gym-manager/internal/api"
	"alcyxob/gym-manager/internal/config"
	"alcyxob/gym-manager/internal/logger"
	"alcyxob/gym-manager/internal/metrics"
	"alcyxob/gym-manager/internal/repository/mongo"
	"alcyxob/gym-manager/internal/service"
	"alcyxob/gym-manager/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title Gym Manager API
// @version 1.0
// @description Members, trainers, classes, membership packages and dashboard statistics.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Log.Level, cfg.Server.IsDevelopment())
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, appLogger *zap.Logger) error {
	appLogger.Info("starting gym manager",
		zap.String("environment", cfg.Server.Environment),
		zap.String("address", cfg.Server.Address),
	)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return err
	}
	defer func() {
		appLogger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			appLogger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	// --- Ensure Indexes ---
	// The unique email indexes back the duplicate sign-up check, so this
	// runs before the server accepts requests.
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), time.Minute)
	err = mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndex()
	if err != nil {
		return err
	}

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if storage.Configured(cfg.S3) {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, appLogger)
		if err != nil {
			return err
		}
	} else {
		appLogger.Warn("s3 is not configured, member photos are disabled")
		fileStorage = storage.NewDisabledStorage()
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// --- Initialize Repositories ---
	credentialRepo := mongo.NewMongoCredentialRepository(appDB)
	userRepo := mongo.NewMongoUserRepository(appDB)
	clientRepo := mongo.NewMongoClientRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	classRepo := mongo.NewMongoClassRepository(appDB)
	packageRepo := mongo.NewMongoPackageRepository(appDB)
	paymentRepo := mongo.NewMongoPaymentRepository(appDB)

	// --- Initialize Services ---
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration)
	services := api.Services{
		Auth:     service.NewAuthService(credentialRepo, userRepo, tokenService, appLogger),
		Clients:  service.NewClientService(clientRepo, fileStorage, appLogger),
		Trainers: service.NewTrainerService(trainerRepo),
		Classes:  service.NewClassService(classRepo),
		Packages: service.NewPackageService(packageRepo),
		Stats:    service.NewStatsService(clientRepo, trainerRepo, classRepo, packageRepo, paymentRepo),
	}

	authLimiter := api.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst, appLogger, collector)
	defer authLimiter.Stop()

	// --- Initialize Gin Engine ---
	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	err = api.SetupRoutes(router, services, api.RouterOptions{
		AllowedOrigin:  cfg.Server.AllowedOrigin,
		TrustedProxies: cfg.Server.TrustedProxies,
		SessionTTL:     tokenService.TTL(),
		SecureCookies:  !cfg.Server.IsDevelopment(),
		AuthLimiter:    authLimiter,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(registry),
	}, appLogger)
	if err != nil {
		return err
	}

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	appLogger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return err
	}

	appLogger.Info("server exited")
	return nil
}
