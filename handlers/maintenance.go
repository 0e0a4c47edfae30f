package handlers

import (
	"net/http"

	"nestora/models"
	"nestora/services/maintenance"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaintenanceHandler exposes the maintenance request endpoints.
type MaintenanceHandler struct {
	Service maintenance.MaintenanceService
}

// ReportHandler handles POST /api/maintenance.
func (h *MaintenanceHandler) ReportHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid maintenance request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ReporterID = c.GetString("accountID")

	filed, err := h.Service.Report(req)
	if err != nil {
		logger.Error("Maintenance report failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, filed)
}

// ListByPropertyHandler handles GET /api/maintenance/property/:id.
func (h *MaintenanceHandler) ListByPropertyHandler(c *gin.Context) {
	logger := getLogger(c)

	propertyID := c.Param("id")
	requests, err := h.Service.ListByProperty(propertyID)
	if err != nil {
		logger.Error("Maintenance list failed", zap.String("propertyID", propertyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateStatusHandler handles PATCH /api/maintenance/:id/status.
func (h *MaintenanceHandler) UpdateStatusHandler(c *gin.Context) {
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
		logger.Error("Maintenance status update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
}
