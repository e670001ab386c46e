package controllers

import (
	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
)

// POST /api/v1/payments
// Runs the full payment pipeline for an authenticated merchant. The request
// is synchronous: the response carries the terminal payment state.
func CreatePayment(c *gin.Context) {
	utils.LogInfo("CreatePayment called")
	merchant := c.MustGet("merchant").(models.Merchant)

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request from merchant %s: %v", merchant.ID, err)
		utils.BadRequest(c, utils.ErrCodeBadRequest, "order_id and method (upi or card) are required")
		return
	}

	payment, perr := ProcessPayment(NewGormStore(config.DB), Simulator, &merchant.ID, req, MerchantAPIProfile)
	if perr != nil {
		utils.GatewayError(c, perr.Status, perr.Code, perr.Description)
		return
	}

	utils.Created(c, payment)
}

// GET /api/v1/payments/:payment_id
func GetPayment(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	paymentID := c.Param("payment_id")

	var payment models.Payment
	if err := config.DB.Where("id = ? AND merchant_id = ?", paymentID, merchant.ID).First(&payment).Error; err != nil {
		utils.LogError("Payment %s not found for merchant %s", paymentID, merchant.ID)
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.OK(c, payment)
}

// GET /api/v1/payments
// Lists the merchant's payments, newest first, with pagination.
func ListPayments(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Payment{}).Where("merchant_id = ?", merchant.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payments for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments")
		return
	}
	pagination.SetTotal(total)

	var payments []models.Payment
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to list payments for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments")
		return
	}

	utils.SendPaginatedResponse(c, payments, pagination)
}
