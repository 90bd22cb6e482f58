package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/providers"
	"github.com/betscope/betscope/internal/services"
)

// GamesHandler serves the upcoming-games listing endpoints.
type GamesHandler struct {
	aggregator *services.Aggregator
	logger     *logrus.Logger
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(aggregator *services.Aggregator, logger *logrus.Logger) *GamesHandler {
	return &GamesHandler{aggregator: aggregator, logger: logger}
}

// ListGames returns enriched records for a sport's upcoming games.
func (h *GamesHandler) ListGames(c *gin.Context) {
	sport := models.Sport(c.Query("sport"))
	if !sport.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "unsupported sport",
			"sports": models.AllSports(),
		})
		return
	}

	records, err := h.aggregator.AggregateUpcoming(c.Request.Context(), sport)
	if err != nil {
		h.logger.WithError(err).WithField("sport", sport).Error("Failed to list upcoming games")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upcoming games unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sport": sport,
		"games": records,
		"total": len(records),
	})
}

// ListSports returns the supported sports and their odds provider keys.
func (h *GamesHandler) ListSports(c *gin.Context) {
	sports := make([]gin.H, 0, len(models.AllSports()))
	for _, sport := range models.AllSports() {
		entry := gin.H{"sport": sport}
		if key, ok := providers.SportKey(sport); ok {
			entry["odds_sport_key"] = key
		}
		sports = append(sports, entry)
	}
	c.JSON(http.StatusOK, gin.H{"sports": sports})
}
