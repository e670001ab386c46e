package config

import (
	"fmt"

	"github.com/Aravind-728/PayStream/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations.
func InitDB() {
	if App == nil {
		if _, err := LoadConfig(); err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		App.DBHost, App.DBPort, App.DBUser, App.DBPassword, App.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Auto-migrate the schema. Order and Payment IDs are application
	// generated strings; the primary key is the authoritative uniqueness
	// guard for the collision-retry loop.
	err = DB.AutoMigrate(
		&models.Merchant{},
		&models.Order{},
		&models.Payment{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
