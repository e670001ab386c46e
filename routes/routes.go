package routes

import (
	"github.com/Aravind-728/PayStream/controllers"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/", func(c *gin.Context) {
		utils.OK(c, gin.H{"message": "Payment Gateway API is ready"})
	})
	router.GET("/health", controllers.HealthCheck)

	api := router.Group("/api/v1")
	{
		// Sandbox credentials for local development
		api.GET("/test/merchant", controllers.GetTestMerchant)

		initMerchantRoutes(api)
		initPublicRoutes(api)
	}

	return router
}
