package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/httpx"
	"github.com/hmfarooq/storefront-api/services"
)

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

type SetQuantityInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// GET /api/cart
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetCart(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// POST /api/cart
func AddItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httpx.BadRequest(c, "Product ID is required")
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		cart, err := svc.AddItem(c.Request.Context(), c.GetString("user_id"), input.ProductID, quantity)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart", "cart": cart})
	}
}

// PUT /api/cart
func UpdateItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httpx.BadRequest(c, "Product ID and quantity are required")
			return
		}

		cart, err := svc.SetItemQuantity(c.Request.Context(), c.GetString("user_id"), input.ProductID, *input.Quantity)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated", "cart": cart})
	}
}

// DELETE /api/cart/:productId
func RemoveItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("productId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart", "cart": cart})
	}
}
