package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/httpx"
	"github.com/hmfarooq/storefront-api/models"
	"github.com/hmfarooq/storefront-api/services"
)

type PlaceOrderInput struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// POST /api/orders
func PlaceOrder(checkout *services.CheckoutService, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httpx.BadRequest(c, "Shipping address and payment method are required")
			return
		}

		order, err := checkout.PlaceOrder(
			c.Request.Context(),
			c.GetString("user_id"),
			input.ShippingAddress,
			models.PaymentMethod(input.PaymentMethod),
		)
		if err != nil {
			httpx.Fail(c, err)
			return
		}

		feed.Broadcast(order)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed successfully", "order": order})
	}
}

// GET /api/orders
func ListOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByUser(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /api/admin/orders
func ListAllOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
