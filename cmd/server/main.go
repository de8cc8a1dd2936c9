package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/gympro/backend/internal/application/identity"
	membershipapp "github.com/gympro/backend/internal/application/membership"
	reportapp "github.com/gympro/backend/internal/application/report"
	settingsapp "github.com/gympro/backend/internal/application/settings"
	"github.com/gympro/backend/internal/domain/identity"
	"github.com/gympro/backend/internal/infrastructure/auth"
	"github.com/gympro/backend/internal/infrastructure/config"
	"github.com/gympro/backend/internal/infrastructure/logger"
	"github.com/gympro/backend/internal/infrastructure/persistence"
	"github.com/gympro/backend/internal/interfaces/http/handler"
	"github.com/gympro/backend/internal/interfaces/http/middleware"
	"github.com/gympro/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting GymPro Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis, in-memory fallback for
	// single-node deployments without one
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	checkInRepo := persistence.NewGormCheckInRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	gymProfileRepo := persistence.NewGormGymProfileRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT)
	clientService := membershipapp.NewClientService(clientRepo, planRepo)
	planService := membershipapp.NewPlanService(planRepo, clientRepo)
	checkInService := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	userService := identityapp.NewUserService(userRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	}, log)
	reportService := reportapp.NewReportService(clientRepo, checkInRepo, reportRepo)
	settingsService := settingsapp.NewSettingsService(gymProfileRepo)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService)
	planHandler := handler.NewPlanHandler(planService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication (login and refresh are on the JWT skip list)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Member directory
	clientRoutes := router.NewDomainGroup("clients", "/clients")
	clientRoutes.Use(middleware.RequireCapability(identity.CapabilityManageClients))
	clientRoutes.POST("", clientHandler.Register)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/stats/count", clientHandler.Count)
	clientRoutes.GET("/ci/:cinit", clientHandler.GetByCINIT)
	clientRoutes.GET("/:id", clientHandler.GetByID)
	clientRoutes.PUT("/:id", clientHandler.Update)
	clientRoutes.DELETE("/:id", clientHandler.Delete)
	clientRoutes.POST("/:id/renew", clientHandler.Renew)
	clientRoutes.POST("/:id/freeze", clientHandler.Freeze)
	clientRoutes.POST("/:id/unfreeze", clientHandler.Unfreeze)

	// Plan catalog: any staff member can browse, only admins change it
	planRoutes := router.NewDomainGroup("plans", "/plans")
	planRoutes.GET("", planHandler.List)
	planRoutes.GET("/:id", planHandler.GetByID)
	planRoutes.POST("", middleware.RequireCapability(identity.CapabilityManagePlans), planHandler.Create)
	planRoutes.PUT("/:id", middleware.RequireCapability(identity.CapabilityManagePlans), planHandler.Update)
	planRoutes.DELETE("/:id", middleware.RequireCapability(identity.CapabilityManagePlans), planHandler.Delete)
	planRoutes.POST("/:id/activate", middleware.RequireCapability(identity.CapabilityManagePlans), planHandler.Activate)
	planRoutes.POST("/:id/deactivate", middleware.RequireCapability(identity.CapabilityManagePlans), planHandler.Deactivate)

	// Front desk admission
	checkInRoutes := router.NewDomainGroup("checkins", "/check-ins")
	checkInRoutes.Use(middleware.RequireCapability(identity.CapabilityCheckIn))
	checkInRoutes.POST("", checkInHandler.Admit)
	checkInRoutes.GET("", checkInHandler.List)

	// Analytics
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.Use(middleware.RequireCapability(identity.CapabilityViewAnalytics))
	reportRoutes.GET("/dashboard", reportHandler.Dashboard)
	reportRoutes.GET("/check-ins/daily-trend", reportHandler.DailyTrend)
	reportRoutes.GET("/check-ins/heatmap", reportHandler.Heatmap)
	reportRoutes.GET("/plans/distribution", reportHandler.PlanDistribution)
	reportRoutes.GET("/registrations/monthly", reportHandler.MonthlyRegistrations)

	// Gym profile and notifications
	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.Use(middleware.RequireCapability(identity.CapabilityManageSettings))
	settingsRoutes.GET("/profile", settingsHandler.GetProfile)
	settingsRoutes.PUT("/profile", settingsHandler.UpdateProfile)
	settingsRoutes.PUT("/notifications", settingsHandler.UpdateNotifications)

	// Staff accounts
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.Use(middleware.RequireCapability(identity.CapabilityManageUsers))
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)
	userRoutes.POST("/:id/reset-password", userHandler.ResetPassword)
	userRoutes.POST("/:id/activate", userHandler.Activate)
	userRoutes.POST("/:id/deactivate", userHandler.Deactivate)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(clientRoutes).
		Register(planRoutes).
		Register(checkInRoutes).
		Register(reportRoutes).
		Register(settingsRoutes).
		Register(userRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
