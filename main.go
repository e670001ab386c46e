package main

import (
	"log"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/controllers"
	"github.com/Aravind-728/PayStream/routes"
	"github.com/Aravind-728/PayStream/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	if _, err := config.LoadConfig(); err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Connect Redis for the public rate limiter (optional)
	if err := config.InitRedis(); err != nil {
		utils.LogError("Error connecting to Redis: %v", err)
		log.Fatal("Error connecting to Redis:", err)
	}

	// Seed the sandbox merchant
	if err := controllers.SeedTestMerchant(); err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		log.Fatal("Failed to seed test merchant:", err)
	}

	// Build the settlement simulator from config
	controllers.InitSimulator()

	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
