package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hmfarooq/storefront-api/apperr"
	"github.com/hmfarooq/storefront-api/models"
	"gorm.io/gorm"
)

// CheckoutService converts a cart into an immutable order. Creating the
// order and deleting the cart commit together or not at all; no caller
// can observe an order whose source cart still exists.
type CheckoutService struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCheckoutService(db *gorm.DB, timeout time.Duration) *CheckoutService {
	return &CheckoutService{db: db, timeout: timeout}
}

// PlaceOrder freezes the user's cart into a new pending order and clears
// the cart in the same transaction.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, shippingAddress string, method models.PaymentMethod) (models.Order, error) {
	if strings.TrimSpace(shippingAddress) == "" || method == "" {
		return models.Order{}, apperr.New(apperr.InvalidInput, "Shipping address and payment method are required")
	}
	if !models.ValidPaymentMethod(method) {
		return models.Order{}, apperr.New(apperr.InvalidInput, "Invalid payment method")
	}

	var order models.Order
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		return storageErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			err := lockForUpdate(tx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.EmptyCart, "Cart is empty")
			} else if err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return apperr.New(apperr.EmptyCart, "Cart is empty")
			}

			items := make([]models.OrderItem, 0, len(cart.Items))
			for _, it := range cart.Items {
				items = append(items, models.OrderItem{
					ProductID: it.ProductID,
					Name:      it.Name,
					Price:     it.Price,
					Image:     it.Image,
					Quantity:  it.Quantity,
				})
			}

			order = models.Order{
				ID:              uuid.NewString(),
				UserID:          userID,
				Items:           items,
				Total:           cart.Total, // copied verbatim, not recomputed
				ShippingAddress: shippingAddress,
				PaymentMethod:   method,
				Status:          models.OrderStatusPending,
				CreatedAt:       time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			res := tx.Delete(&models.Cart{}, cart.ID)
			if res.Error != nil {
				return res.Error
			}
			// Someone consumed the cart between our read and delete. Roll
			// the order back rather than ship the same items twice.
			if res.RowsAffected == 0 {
				return apperr.New(apperr.Conflict, "Cart was modified concurrently")
			}
			return nil
		}))
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
