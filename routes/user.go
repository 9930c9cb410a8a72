package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/config"
	cartControllers "github.com/hmfarooq/storefront-api/controllers/cart"
	userControllers "github.com/hmfarooq/storefront-api/controllers/user"
	"github.com/hmfarooq/storefront-api/middleware"
	"github.com/hmfarooq/storefront-api/services"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the JWT-protected profile and cart endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cartSvc *services.CartService, cfg config.Config) {
	authed := api.Group("")
	authed.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		authed.GET("/profile", userControllers.GetProfile(db))

		cart := authed.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(cartSvc))
			cart.POST("", cartControllers.AddItem(cartSvc))
			cart.PUT("", cartControllers.UpdateItem(cartSvc))
			cart.DELETE("/:productId", cartControllers.RemoveItem(cartSvc))
		}
	}
}
