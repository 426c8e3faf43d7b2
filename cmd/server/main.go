package main

import (
	"github.com/cwru-wtf/homebase/internal/handler"
	"github.com/cwru-wtf/homebase/internal/middleware"
	"github.com/cwru-wtf/homebase/internal/service"
	"github.com/cwru-wtf/homebase/pkg/config"
	"github.com/cwru-wtf/homebase/pkg/database"
	"github.com/cwru-wtf/homebase/pkg/jwtutil"
	"github.com/cwru-wtf/homebase/pkg/logger"
	"github.com/cwru-wtf/homebase/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting intake service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.Initialize(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Construct services with the shared database handle
	audit := service.NewAuditLogger(db, log)
	submissions := service.NewSubmissionService(db, audit, log)
	reviews := service.NewReviewService(db, audit, log)

	submissionHandler := handler.NewSubmissionHandler(submissions)
	adminHandler := handler.NewAdminHandler(submissions, reviews)
	authHandler := handler.NewAuthHandler(db)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)
	e.POST("/submissions", submissionHandler.Create)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Admin routes - require an authenticated reviewer role
	admin := e.Group("/admin")
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.RequireAdmin)
	admin.GET("/submissions", adminHandler.List)
	admin.PATCH("/submissions", adminHandler.SetStatus)
	admin.GET("/stats", adminHandler.Stats)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
