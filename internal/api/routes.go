package api

import (
	"fmt"
	"net/http"
	"time"

	"alcyxob/gym-manager/internal/metrics"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles what the router needs from the service layer.
type Services struct {
	Auth     service.AuthService
	Clients  service.ClientService
	Trainers service.TrainerService
	Classes  service.ClassService
	Packages service.PackageService
	Stats    service.StatsService
}

// RouterOptions carries the HTTP-level settings.
type RouterOptions struct {
	AllowedOrigin  string
	TrustedProxies []string
	SessionTTL     time.Duration
	SecureCookies  bool
	AuthLimiter    *RateLimiter
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
}

// SetupRoutes installs the middleware chain and every route on router.
// Forwarded headers are only honoured from opts.TrustedProxies, so the
// per-IP auth limiter cannot be bypassed with a forged X-Forwarded-For.
func SetupRoutes(router *gin.Engine, svcs Services, opts RouterOptions, logger *zap.Logger) error {
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	authHandler := NewAuthHandler(svcs.Auth, logger, opts.Metrics, opts.SessionTTL, opts.SecureCookies)
	clientHandler := NewClientHandler(svcs.Clients, logger)
	trainerHandler := NewTrainerHandler(svcs.Trainers, logger)
	classHandler := NewClassHandler(svcs.Classes, logger)
	packageHandler := NewPackageHandler(svcs.Packages, logger)
	statsHandler := NewStatsHandler(svcs.Stats, logger)

	authMiddleware := AuthMiddleware(svcs.Auth, logger, opts.Metrics)

	router.Use(
		RequestID(),
		RequestLogger(logger, opts.Metrics),
		Recovery(logger),
		CORS(opts.AllowedOrigin),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Application is running")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	authGroup := router.Group("/auth")
	{
		throttled := authGroup.Group("")
		if opts.AuthLimiter != nil {
			throttled.Use(opts.AuthLimiter.Middleware())
		}
		throttled.POST("/signup", authHandler.SignUp)
		throttled.POST("/login", authHandler.Login)

		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/profile/:uid", authMiddleware, authHandler.GetProfile)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(authMiddleware)
	{
		clients := apiGroup.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.GetAllClients)
			clients.GET("/search", clientHandler.SearchClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
			clients.POST("/:id/photo", clientHandler.RequestPhotoUpload)
			clients.GET("/:id/photo", clientHandler.GetPhoto)
		}

		trainers := apiGroup.Group("/trainers")
		{
			trainers.POST("", trainerHandler.CreateTrainer)
			trainers.GET("", trainerHandler.GetAllTrainers)
			trainers.GET("/search", trainerHandler.SearchTrainers)
			trainers.POST("/schedule", trainerHandler.ManageSchedule)
			trainers.GET("/:id", trainerHandler.GetTrainer)
			trainers.PUT("/:id", trainerHandler.UpdateTrainer)
			trainers.DELETE("/:id", trainerHandler.DeleteTrainer)
		}

		classes := apiGroup.Group("/classes")
		{
			classes.POST("", classHandler.CreateClass)
			classes.GET("", classHandler.GetAllClasses)
			classes.GET("/:id", classHandler.GetClass)
			classes.PUT("/:id", classHandler.UpdateClass)
			classes.DELETE("/:id", classHandler.DeleteClass)
		}

		packages := apiGroup.Group("/packages")
		{
			packages.POST("", packageHandler.CreatePackage)
			packages.GET("", packageHandler.GetAllPackages)
			packages.GET("/:id", packageHandler.GetPackage)
			packages.PUT("/:id", packageHandler.UpdatePackage)
			packages.DELETE("/:id", packageHandler.DeletePackage)
		}
	}

	statsGroup := router.Group("/stats")
	statsGroup.Use(authMiddleware)
	{
		statsGroup.GET("/members", statsHandler.MembersCount())
		statsGroup.GET("/trainers", statsHandler.TrainersCount())
		statsGroup.GET("/classes", statsHandler.ClassesCount())
		statsGroup.GET("/classes/count", statsHandler.ClassesPerDay)
		statsGroup.GET("/plans", statsHandler.PlansCount())
		statsGroup.GET("/revenue", statsHandler.MonthlyRevenue)
	}

	return nil
}
