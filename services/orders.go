package services

import (
	"context"
	"time"

	"github.com/hmfarooq/storefront-api/models"
	"gorm.io/gorm"
)

// OrderService is the read path over the append-only order ledger. Orders
// are only ever written by CheckoutService; nothing updates them here.
type OrderService struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewOrderService(db *gorm.DB, timeout time.Duration) *OrderService {
	return &OrderService{db: db, timeout: timeout}
}

// ListByUser returns the user's orders, newest first. No orders is an
// empty list, not an error.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		return storageErr(s.db.WithContext(ctx).
			Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error)
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// ListAll returns every order, newest first. Admin surface only.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		return storageErr(s.db.WithContext(ctx).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error)
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
