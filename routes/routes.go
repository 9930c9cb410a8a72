package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/config"
	orderControllers "github.com/hmfarooq/storefront-api/controllers/order"
	"github.com/hmfarooq/storefront-api/services"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
// Services are built once here and shared by all handlers.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cartSvc := services.NewCartService(db, cfg.StorageTimeout)
	checkoutSvc := services.NewCheckoutService(db, cfg.StorageTimeout)
	orderSvc := services.NewOrderService(db, cfg.StorageTimeout)
	feed := orderControllers.NewFeed()

	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupCatalogRoutes(api, db, cfg)
	SetupUserRoutes(api, db, cartSvc, cfg)
	SetupOrderRoutes(api, checkoutSvc, orderSvc, feed, cfg)
	SetupAdminRoutes(api, db, orderSvc, feed, cfg)
}
