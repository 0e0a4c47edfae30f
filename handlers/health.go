package handlers

import (
	"net/http"

	"nestora/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Hi, I'm Nestora",
		"health":  status,
	})
}
