package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/config"
	orderControllers "github.com/hmfarooq/storefront-api/controllers/order"
	"github.com/hmfarooq/storefront-api/middleware"
	"github.com/hmfarooq/storefront-api/services"
)

// SetupOrderRoutes registers the JWT-protected checkout and order
// history endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, checkoutSvc *services.CheckoutService, orderSvc *services.OrderService, feed *orderControllers.Feed, cfg config.Config) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		orders.GET("", orderControllers.ListOrders(orderSvc))
		orders.POST("", orderControllers.PlaceOrder(checkoutSvc, feed))
	}
}
