package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renderdebug/agent/internal/config"
	"github.com/renderdebug/agent/internal/heuristics"
	"github.com/renderdebug/agent/internal/logger"
	"github.com/renderdebug/agent/internal/render"
)

const serviceName = "render-debug-agent"

type DebugController struct {
	cfg    config.Config
	client *render.Client
}

func NewDebugController(cfg config.Config) *DebugController {
	return &DebugController{
		cfg:    cfg,
		client: render.NewClient(cfg),
	}
}

type debugRequest struct {
	Logs string `json:"logs"`
}

// GetLogs fetches the service's build logs from the Render API.
func (dc *DebugController) GetLogs(c *gin.Context) {
	logs, err := dc.client.FetchBuildLogs(c.Request.Context())
	if err != nil {
		dc.fetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"logs":   logs,
	})
}

// Debug analyzes log text supplied in the body, falling back to a
// fetch from the Render API when the body carries none.
func (dc *DebugController) Debug(c *gin.Context) {
	var req debugRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "error",
				"error":  "invalid JSON body",
			})
			return
		}
	}

	logs := req.Logs
	if logs == "" {
		if !dc.cfg.Configured() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "error",
				"error":  "no log text available: request body is empty and log retrieval is not configured",
			})
			return
		}

		fetched, err := dc.client.FetchBuildLogs(c.Request.Context())
		if err != nil {
			dc.fetchError(c, err)
			return
		}
		logs = fetched
	}

	result := heuristics.Analyze(logs)

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"logs":        logs,
		"suggestions": result.Suggestions,
		"fixes":       result.Fixes,
	})
}

// Health reports liveness. No dependency checks.
func (dc *DebugController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

// Ready reports whether the Render credentials are configured. It
// never contacts the upstream API.
func (dc *DebugController) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ready": dc.cfg.Configured(),
	})
}

// fetchError translates a retrieval failure into an HTTP response.
func (dc *DebugController) fetchError(c *gin.Context, err error) {
	var upstream *render.UpstreamError
	switch {
	case errors.Is(err, render.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
	case errors.As(err, &upstream):
		logger.WithComponent("render_client").
			WithField("upstream_status", upstream.StatusCode).
			Warn("render API returned an error")
		c.JSON(http.StatusBadGateway, gin.H{
			"status":          "error",
			"error":           "render API request failed",
			"upstream_status": upstream.StatusCode,
			"upstream_body":   upstream.Body,
		})
	default:
		logger.WithComponent("render_client").
			WithField("error", err.Error()).
			Error("failed to fetch build logs")
		c.JSON(http.StatusBadGateway, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
	}
}
