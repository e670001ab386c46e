package routes

import (
	"github.com/Aravind-728/PayStream/controllers"
	"github.com/Aravind-728/PayStream/middleware"
	"github.com/gin-gonic/gin"
)

// initMerchantRoutes initializes the authenticated merchant API routes.
func initMerchantRoutes(api *gin.RouterGroup) {
	merchant := api.Group("")
	merchant.Use(middleware.MerchantAuthMiddleware())

	orders := merchant.Group("/orders")
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.ListOrders)
		orders.GET("/:order_id", controllers.GetOrder)
	}

	payments := merchant.Group("/payments")
	{
		payments.POST("", controllers.CreatePayment)
		payments.GET("", controllers.ListPayments)
		payments.GET("/export", controllers.DownloadPaymentsExcel)
		payments.GET("/:payment_id", controllers.GetPayment)
		payments.GET("/:payment_id/receipt", controllers.DownloadPaymentReceipt)
	}
}
