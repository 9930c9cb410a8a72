package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hmfarooq/storefront-api/httpx"
	"github.com/hmfarooq/storefront-api/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httpx.BadRequest(c, "Required fields missing")
			return
		}

		if *input.Price < 0 {
			httpx.BadRequest(c, "Price must not be negative")
			return
		}
		if input.Stock < 0 {
			httpx.BadRequest(c, "Stock must not be negative")
			return
		}
		if input.Rating < 0 || input.Rating > 5 {
			httpx.BadRequest(c, "Rating must be between 0 and 5")
			return
		}
		if !models.ValidCategory(models.Category(input.Category)) {
			httpx.BadRequest(c, "Invalid category")
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Category:    models.Category(input.Category),
			Image:       input.Image,
			Stock:       input.Stock,
			Rating:      input.Rating,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product created", "product": product})
	}
}
