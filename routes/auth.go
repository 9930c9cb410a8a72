package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/auth"
	"github.com/hmfarooq/storefront-api/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public registration/login endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	api.POST("/register", auth.Register(db, cfg.JWTSecret))
	api.POST("/login", auth.Login(db, cfg.JWTSecret))
}
