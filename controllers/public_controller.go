package controllers

import (
	"errors"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/v1/public/orders/:order_id
// Fetches the minimal order view the hosted checkout page needs. No auth:
// knowing the opaque order ID is the capability.
func GetPublicOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	err := config.DB.Where("id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.NotFound(c, "Order not found")
		return
	}
	if err != nil {
		utils.LogError("Failed to fetch public order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch order")
		return
	}

	var merchant models.Merchant
	merchantName := ""
	if err := config.DB.Where("id = ?", order.MerchantID).First(&merchant).Error; err == nil {
		merchantName = merchant.Name
	}

	utils.OK(c, gin.H{
		"id":            order.ID,
		"amount":        order.Amount,
		"currency":      order.Currency,
		"status":        order.Status,
		"merchant_name": merchantName,
	})
}

// POST /api/v1/public/payments
// Processes a payment from the hosted checkout page. The order lookup is not
// merchant-scoped; the merchant is taken from the order itself.
func CreatePublicPayment(c *gin.Context) {
	utils.LogInfo("CreatePublicPayment called")

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid public payment request: %v", err)
		utils.BadRequest(c, utils.ErrCodeBadRequest, "order_id and method (upi or card) are required")
		return
	}

	payment, perr := ProcessPayment(NewGormStore(config.DB), Simulator, nil, req, PublicCheckoutProfile)
	if perr != nil {
		utils.GatewayError(c, perr.Status, perr.Code, perr.Description)
		return
	}

	utils.Created(c, payment)
}

// GET /api/v1/public/payments/:payment_id
// Status poll for the checkout page.
func GetPublicPaymentStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var payment models.Payment
	err := config.DB.Where("id = ?", paymentID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.NotFound(c, "Payment not found")
		return
	}
	if err != nil {
		utils.LogError("Failed to fetch public payment %s: %v", paymentID, err)
		utils.InternalServerError(c, "Failed to fetch payment")
		return
	}

	utils.OK(c, payment)
}
