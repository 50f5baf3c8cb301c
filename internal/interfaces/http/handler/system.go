package handler

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/erp/labeler/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler handles liveness and system information endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	engine    string
	dataDir   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version, engine string) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		engine:    engine,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	RenderEngine string `json:"render_engine"`
	Uptime       string `json:"uptime"`
}

// GetSystemInfo returns version, render engine and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:         h.name,
		Version:      h.version,
		GoVersion:    runtime.Version(),
		RenderEngine: h.engine,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping answers pong
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// WithDataDir makes Health report unhealthy when dir is missing
func (h *SystemHandler) WithDataDir(dir string) *SystemHandler {
	h.dataDir = dir
	return h
}

// Health is the unversioned liveness probe
func (h *SystemHandler) Health(c *gin.Context) {
	if h.dataDir != "" {
		if info, err := os.Stat(h.dataDir); err != nil || !info.IsDir() {
			logger.GetGinLogger(c).Warn("Health check failed",
				zap.String("data_dir", h.dataDir), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"time":    time.Now().Format(time.RFC3339),
				"storage": "error",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().Format(time.RFC3339),
		"storage": "ok",
	})
}
