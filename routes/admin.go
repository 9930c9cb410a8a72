package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/config"
	orderControllers "github.com/hmfarooq/storefront-api/controllers/order"
	userControllers "github.com/hmfarooq/storefront-api/controllers/user"
	"github.com/hmfarooq/storefront-api/middleware"
	"github.com/hmfarooq/storefront-api/services"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the admin-only ledger and user surfaces.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, orderSvc *services.OrderService, feed *orderControllers.Feed, cfg config.Config) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		admin.GET("/users", userControllers.GetAllUsers(db))

		admin.GET("/orders", orderControllers.ListAllOrders(orderSvc))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(orderSvc))
		admin.GET("/orders/feed", feed.Handler())
	}
}
