// Package handlers exposes the HTTP surface over the aggregator.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/services"
)

const maxBetTextLength = 500

// BetHandler handles bet analysis requests.
type BetHandler struct {
	aggregator *services.Aggregator
	logger     *logrus.Logger
}

// NewBetHandler creates a new bet handler.
func NewBetHandler(aggregator *services.Aggregator, logger *logrus.Logger) *BetHandler {
	return &BetHandler{aggregator: aggregator, logger: logger}
}

type analyzeBetRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeBet classifies the submitted bet text and returns the
// aggregated game context, including any partial-result warnings.
func (h *BetHandler) AnalyzeBet(c *gin.Context) {
	var req analyzeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if len(text) > maxBetTextLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text exceeds maximum length"})
		return
	}

	record, err := h.aggregator.AnalyzeBet(c.Request.Context(), text)
	if err != nil {
		h.logger.WithError(err).Error("Bet analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze bet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": record})
}
