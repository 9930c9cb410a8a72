package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/httpx"
	"github.com/hmfarooq/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
}

// PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httpx.BadRequest(c, "Invalid input")
			return
		}

		var product models.Product
		if err := db.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve product"})
			}
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				httpx.BadRequest(c, "Price must not be negative")
				return
			}
			product.Price = *input.Price
		}
		if input.Category != nil {
			if !models.ValidCategory(models.Category(*input.Category)) {
				httpx.BadRequest(c, "Invalid category")
				return
			}
			product.Category = models.Category(*input.Category)
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				httpx.BadRequest(c, "Stock must not be negative")
				return
			}
			product.Stock = *input.Stock
		}
		if input.Rating != nil {
			if *input.Rating < 0 || *input.Rating > 5 {
				httpx.BadRequest(c, "Rating must be between 0 and 5")
				return
			}
			product.Rating = *input.Rating
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated", "product": product})
	}
}
