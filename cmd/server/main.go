package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alimgiray/gfolio/internal/handlers"
	"github.com/alimgiray/gfolio/internal/middleware"
	"github.com/alimgiray/gfolio/internal/repositories"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/internal/workers"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/logger"
	"github.com/alimgiray/gfolio/web"
)

func main() {
	logger.Init()

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	gin.SetMode(cfg.Server.Mode)

	// Open the snapshot store
	store, err := repositories.OpenStore(context.Background(), cfg.Store)
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer store.Close()

	// Initialize dependencies
	githubService, err := services.NewGitHubService(cfg.GitHub.APIURL, cfg.GitHub.RequestTimeout)
	if err != nil {
		logger.Fatalf("Failed to create GitHub client: %v", err)
	}
	cacheService := services.NewCacheService(store)
	portfolioService := services.NewPortfolioService(cfg.GitHub.Username, githubService, cacheService)
	exportService := services.NewExportService()
	cvService := services.NewCVService(cfg.CV.Path, cfg.CV.Filename)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager()
	if cfg.Refresh.Interval > 0 {
		workerManager.Add(workers.NewRefreshWorker("refresh-1", portfolioService, cfg.Refresh.Interval))
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	if err := loadTemplates(router); err != nil {
		logger.Fatalf("Failed to load templates: %v", err)
	}
	setupRoutes(router, portfolioService, exportService, cvService)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.WithField("addr", server.Addr).WithField("username", cfg.GitHub.Username).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.GetLogger().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shut down")
	}
	workerManager.StopAll()

	logger.GetLogger().Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	portfolioService *services.PortfolioService,
	exportService *services.ExportService,
	cvService *services.CVService,
) {
	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, exportService)
	cvHandler := handlers.NewCVHandler(cvService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Portfolio page
	router.GET("/", portfolioHandler.Index)
	router.GET("/stream", portfolioHandler.Stream)
	router.GET("/export.xlsx", portfolioHandler.Export)

	api := router.Group("/api")
	{
		api.GET("/snapshot", portfolioHandler.Snapshot)
	}

	// CV download
	router.GET("/cv", cvHandler.Download)
	router.HEAD("/cv", cvHandler.Head)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	return nil
}
