package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renderdebug/agent/internal/config"
	"github.com/renderdebug/agent/internal/logger"
	"github.com/renderdebug/agent/internal/middleware"
	"github.com/renderdebug/agent/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize logger first
	logger.Initialize()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables", nil)
	}

	cfg := config.Load()
	if !cfg.Configured() {
		// Not fatal: /health, /ready and /debug-with-body still work.
		logger.Warn("Render credentials missing; log retrieval endpoints will fail", map[string]interface{}{
			"token_set":      cfg.APIToken != "",
			"service_id_set": cfg.ServiceID != "",
		})
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	r := gin.New()
	r.Use(middleware.RequestLoggerMiddleware())
	r.Use(gin.Recovery())

	routes.SetupRoutes(r, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	logger.Info("Starting render debug agent", map[string]interface{}{
		"port":     cfg.Port,
		"gin_mode": gin.Mode(),
	})

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Info("Shutting down server gracefully...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("Server exited gracefully", nil)
	}
}
