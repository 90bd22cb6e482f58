package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/services"
	"github.com/betscope/betscope/internal/storage"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store     *storage.InjuryStore
	refresher *services.InjuryRefresher
	logger    *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *storage.InjuryStore, refresher *services.InjuryRefresher, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{store: store, refresher: refresher, logger: logger}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := "ok"
	checks := make(map[string]string)

	if err := h.store.HealthCheck(); err != nil {
		status = "unhealthy"
		checks["database"] = "failed: " + err.Error()
	} else {
		checks["database"] = "ok"
	}

	response := gin.H{
		"status":    status,
		"service":   "betscope",
		"timestamp": time.Now(),
		"checks":    checks,
	}
	if h.refresher != nil {
		response["injury_refresher"] = h.refresher.Status()
	}

	statusCode := http.StatusOK
	if status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
