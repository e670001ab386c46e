package controllers

import (
	"errors"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderCreateRequest is the body of an order creation request. Amount is in
// minor currency units and must be at least 100.
type OrderCreateRequest struct {
	Amount   int64                  `json:"amount" binding:"required,gte=100"`
	Currency string                 `json:"currency" binding:"omitempty,len=3"`
	Receipt  string                 `json:"receipt" binding:"omitempty,max=255"`
	Notes    map[string]interface{} `json:"notes"`
}

// POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")
	merchant := c.MustGet("merchant").(models.Merchant)

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request from merchant %s: %v", merchant.ID, err)
		utils.BadRequest(c, utils.ErrCodeBadRequest, "amount (min 100, in minor units) is required")
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	orderID, err := utils.GenerateUniqueID("order", func(id string) bool {
		var count int64
		config.DB.Model(&models.Order{}).Where("id = ?", id).Count(&count)
		return count > 0
	})
	if err != nil {
		utils.LogError("Failed to mint order id: %v", err)
		utils.InternalServerError(c, "Failed to create order")
		return
	}

	order := models.Order{
		ID:         orderID,
		MerchantID: merchant.ID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
		Status:     models.OrderStatusCreated,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to create order")
		return
	}

	utils.LogInfo("Order %s created for merchant %s", order.ID, merchant.ID)
	utils.Created(c, order)
}

// GET /api/v1/orders/:order_id
func GetOrder(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	orderID := c.Param("order_id")

	var order models.Order
	err := config.DB.Where("id = ? AND merchant_id = ?", orderID, merchant.ID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.NotFound(c, "Order not found")
		return
	}
	if err != nil {
		utils.LogError("Failed to fetch order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch order")
		return
	}

	utils.OK(c, order)
}

// GET /api/v1/orders
// Lists the merchant's orders, newest first, with pagination.
func ListOrders(c *gin.Context) {
	merchant := c.MustGet("merchant").(models.Merchant)
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Where("merchant_id = ?", merchant.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders")
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to list orders for merchant %s: %v", merchant.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders")
		return
	}

	utils.SendPaginatedResponse(c, orders, pagination)
}
