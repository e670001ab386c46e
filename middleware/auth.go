package middleware

import (
	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// MerchantAuthMiddleware authenticates API requests by the X-Api-Key and
// X-Api-Secret headers and puts the merchant in the request context.
func MerchantAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		apiSecret := c.GetHeader("X-Api-Secret")
		if apiKey == "" || apiSecret == "" {
			utils.LogError("Missing API credential headers")
			utils.Unauthorized(c, "Invalid API credentials")
			c.Abort()
			return
		}

		var merchant models.Merchant
		if err := config.DB.Where("api_key = ?", apiKey).First(&merchant).Error; err != nil {
			utils.LogError("Merchant not found for API key: %v", err)
			utils.Unauthorized(c, "Invalid API credentials")
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(merchant.APISecretHash), []byte(apiSecret)); err != nil {
			utils.LogError("API secret mismatch for merchant %s", merchant.ID)
			utils.Unauthorized(c, "Invalid API credentials")
			c.Abort()
			return
		}

		if !merchant.IsActive {
			utils.LogError("Inactive merchant attempted access: %s", merchant.ID)
			utils.Unauthorized(c, "Invalid API credentials")
			c.Abort()
			return
		}

		c.Set("merchant", merchant)
		c.Next()
	}
}
