package routes

import (
	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/controllers"
	"github.com/Aravind-728/PayStream/middleware"
	"github.com/gin-gonic/gin"
)

// initPublicRoutes initializes the unauthenticated checkout routes. These
// are rate limited per IP since anyone holding an order ID can hit them.
func initPublicRoutes(api *gin.RouterGroup) {
	public := api.Group("/public")
	public.Use(middleware.RateLimitMiddleware(config.App.PublicRateLimit, config.App.PublicRateWindow))

	public.GET("/orders/:order_id", controllers.GetPublicOrder)
	public.POST("/payments", controllers.CreatePublicPayment)
	public.GET("/payments/:payment_id", controllers.GetPublicPaymentStatus)
}
