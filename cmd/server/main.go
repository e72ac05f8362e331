package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hazardwatch/internal/config"
	"hazardwatch/internal/handlers"
	"hazardwatch/internal/middleware"
	mongorepo "hazardwatch/internal/repositories/mongodb"
	"hazardwatch/internal/scoring"
	"hazardwatch/pkg/database"
	"hazardwatch/pkg/logger"
	"hazardwatch/pkg/storage"
	"hazardwatch/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.URLPrefix, cfg.Storage.MaxFileSize)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	verbose := !cfg.App.IsProduction()

	hazardRepo := mongorepo.NewHazardRepository(db)
	estimator := scoring.NewEstimator(nil)
	hazardHandler := handlers.NewHazardHandler(hazardRepo, store, estimator, appLogger, verbose)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(appLogger, verbose))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HazardWatch API")
	})

	api := router.Group("/api")
	{
		routes.SetupHazardRoutes(api, hazardHandler)
		api.GET("/health", hazardHandler.HealthCheck)
	}

	router.Static(cfg.Storage.URLPrefix, store.BasePath())

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		appLogger.Infof("HazardWatch API running at http://%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		appLogger.Errorf("Failed to close MongoDB connection: %v", err)
	}
}
