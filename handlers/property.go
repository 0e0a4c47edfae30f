package handlers

import (
	"net/http"

	"nestora/models"
	"nestora/services/property"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes the listing endpoints.
type PropertyHandler struct {
	Service property.PropertyService
}

// PublishHandler handles POST /api/properties.
func (h *PropertyHandler) PublishHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Property
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	// The publishing agent is always the authenticated caller.
	req.AgentID = c.GetString("accountID")

	listing, err := h.Service.Publish(req)
	if err != nil {
		logger.Error("Listing publish failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// GetPropertyHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	listing, err := h.Service.Get(id)
	if err != nil {
		logger.Error("Listing not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// BrowseHandler handles GET /api/properties.
func (h *PropertyHandler) BrowseHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter models.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Error("Invalid browse filter", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	listings, err := h.Service.Browse(filter)
	if err != nil {
		logger.Error("Browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": listings})
}

// UpdateStatusHandler handles PATCH /api/properties/:id/status.
func (h *PropertyHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		logger.Error("Status update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing updated"})
}

// DeletePropertyHandler handles DELETE /api/properties/:id.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Listing delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
