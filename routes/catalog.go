package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/config"
	productcontroller "github.com/hmfarooq/storefront-api/controllers/product"
	"github.com/hmfarooq/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers product browsing (public) and catalog
// mutation (admin only).
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/:id", productcontroller.GetProductByID(db))

	admin := api.Group("/products")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		admin.POST("", productcontroller.CreateProduct(db))
		admin.PUT("/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
