package controllers

import (
	"time"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
)

// GET /health
func HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		utils.LogError("Health check DB probe failed: %v", err)
		dbStatus = "disconnected"
	}

	utils.OK(c, gin.H{
		"status":    "healthy",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
