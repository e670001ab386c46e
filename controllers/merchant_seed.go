package controllers

import (
	"errors"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestMerchantID is the fixed identity of the seeded sandbox merchant.
var TestMerchantID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

const (
	testMerchantAPIKey    = "key_test_abc123"
	testMerchantAPISecret = "secret_test_xyz789"
)

// SeedTestMerchant creates the sandbox merchant on first boot so the API is
// usable out of the box. The secret is stored as a bcrypt hash.
func SeedTestMerchant() error {
	var existing models.Merchant
	err := config.DB.Where("id = ?", TestMerchantID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testMerchantAPISecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	merchant := models.Merchant{
		ID:            TestMerchantID,
		Name:          "Test Merchant",
		Email:         "test@example.com",
		APIKey:        testMerchantAPIKey,
		APISecretHash: string(hash),
		IsActive:      true,
	}
	if err := config.DB.Create(&merchant).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded test merchant %s", TestMerchantID)
	return nil
}

// GET /api/v1/test/merchant
// Exposes the sandbox merchant's identity and API key for local development.
func GetTestMerchant(c *gin.Context) {
	var merchant models.Merchant
	if err := config.DB.Where("id = ?", TestMerchantID).First(&merchant).Error; err != nil {
		utils.NotFound(c, "Test merchant not found")
		return
	}

	utils.OK(c, gin.H{
		"id":      merchant.ID.String(),
		"email":   merchant.Email,
		"api_key": merchant.APIKey,
		"seeded":  true,
	})
}
