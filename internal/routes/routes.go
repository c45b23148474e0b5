package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/renderdebug/agent/internal/config"
	"github.com/renderdebug/agent/internal/controllers"
	"github.com/renderdebug/agent/internal/middleware"
)

// SetupRoutes configures all application routes.
func SetupRoutes(r *gin.Engine, cfg config.Config) {
	debugController := controllers.NewDebugController(cfg)

	// Probes stay open; auth only guards the log endpoints.
	r.GET("/health", debugController.Health)
	r.GET("/ready", debugController.Ready)

	protected := r.Group("/")
	protected.Use(middleware.APIKeyMiddleware(cfg.AllowedKeys))
	{
		protected.GET("/logs", debugController.GetLogs)
		protected.POST("/debug", debugController.Debug)
	}
}
