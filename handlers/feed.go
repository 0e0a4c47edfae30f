package handlers

import (
	"net/http"

	"nestora/services/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler exposes the agent timeline endpoint.
type FeedHandler struct {
	Service feed.FeedService
}

// TimelineHandler handles GET /api/feed.
func (h *FeedHandler) TimelineHandler(c *gin.Context) {
	logger := getLogger(c)

	agentID := c.GetString("accountID")
	posts, err := h.Service.Timeline(agentID)
	if err != nil {
		logger.Error("Timeline fetch failed", zap.String("agentID", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
