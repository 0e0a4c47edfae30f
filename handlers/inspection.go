package handlers

import (
	"net/http"

	"nestora/models"
	"nestora/services/inspection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InspectionHandler exposes the inspection booking and schedule endpoints.
type InspectionHandler struct {
	Service inspection.InspectionService
}

// BookHandler handles POST /api/inspections.
func (h *InspectionHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Inspection
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid inspection request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ClientID = c.GetString("accountID")

	booked, err := h.Service.Book(req)
	if err != nil {
		logger.Error("Inspection booking failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// CancelHandler handles DELETE /api/inspections/:id.
func (h *InspectionHandler) CancelHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	if err := h.Service.Cancel(id); err != nil {
		logger.Error("Inspection cancel failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inspection cancelled"})
}

// WeeklyScheduleHandler handles GET /api/inspections/schedule. It returns
// the laid-out weekly grid for the authenticated agent, along with any
// bookings that could not be placed cleanly.
func (h *InspectionHandler) WeeklyScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	agentID := c.GetString("accountID")
	result, err := h.Service.WeeklySchedule(agentID)
	if err != nil {
		logger.Error("Weekly schedule failed", zap.String("agentID", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
