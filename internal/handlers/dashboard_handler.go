package handlers

import (
	"net/http"

	"girvi-backend/internal/database"
	"girvi-backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// --- GET: dashboard aggregates ---
// Always computed from the live record set; the server never caches these.
func GetDashboardMetrics(c *gin.Context) {
	metrics, err := database.GetDashboardMetrics(database.DB)
	if err != nil {
		logging.LogError("handlers", "GetDashboardMetrics", "compute metrics", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute metrics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Metrics computed", "metrics": metrics})
}
