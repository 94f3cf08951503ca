package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/depredict/internal/response"
	"github.com/stemsi/depredict/internal/service"
)

// SystemHandler reports process and model health.
type SystemHandler struct {
	predictionService *service.PredictionService
	startTime         time.Time
}

func NewSystemHandler(predictionService *service.PredictionService) *SystemHandler {
	return &SystemHandler{
		predictionService: predictionService,
		startTime:         time.Now(),
	}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	info := h.predictionService.ModelInfo()

	status, modelStatus := "ok", "available"
	if !info.Available {
		status, modelStatus = "degraded", "unavailable"
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":        status,
		"model":         modelStatus,
		"model_version": info.Version,
		"uptime":        formatDuration(time.Since(h.startTime)),
	})
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
