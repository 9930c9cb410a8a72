package services

import (
	"context"
	"errors"
	"time"

	"github.com/hmfarooq/storefront-api/apperr"
	"github.com/hmfarooq/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService owns every mutation of a user's cart. All writes run inside
// a transaction holding the cart row lock, and the stored total is always
// recomputed from the line items before the transaction commits, so the
// "total equals the sum of its items" invariant survives concurrent use.
type CartService struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewCartService(db *gorm.DB, timeout time.Duration) *CartService {
	return &CartService{db: db, timeout: timeout}
}

// GetCart returns the user's cart, or the canonical empty cart when none
// exists. Reading never creates state.
func (s *CartService) GetCart(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = emptyCart(userID)
			return nil
		}
		return storageErr(err)
	})
	if err != nil {
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem merges quantity into the user's cart, creating the cart and the
// line item as needed. Quantities accumulate: adding a product already in
// the cart increments its quantity instead of creating a second entry.
// The item keeps the name/price/image snapshot captured on first add.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, apperr.New(apperr.InvalidInput, "Quantity must be at least 1")
	}

	var cart models.Cart
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		err := s.addItemTx(ctx, userID, productID, quantity, &cart)
		// A lost race on lazy cart creation aborts the transaction with a
		// unique violation; the cart exists now, so one re-run succeeds.
		if isUniqueViolation(err) {
			err = s.addItemTx(ctx, userID, productID, quantity, &cart)
		}
		return storageErr(err)
	})
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) addItemTx(ctx context.Context, userID, productID string, quantity int, out *models.Cart) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ?", productID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "Product not found")
			}
			return err
		}

		cart, err := lockedCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).Create(&item).Error; err != nil {
			return err
		}

		if err := recomputeTotal(tx, cart.ID); err != nil {
			return err
		}
		return reloadCart(tx, userID, out)
	})
}

// SetItemQuantity replaces the stored quantity of an existing line item.
// A quantity of zero or less removes the item; that is the designed
// remove-via-zero path, not an error. Unlike AddItem, the quantity is
// absolute, not a delta.
func (s *CartService) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) (models.Cart, error) {
	var cart models.Cart
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		return storageErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			c, err := lockedCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "Cart not found")
			} else if err != nil {
				return err
			}

			var item models.CartItem
			err = tx.Where("cart_id = ? AND product_id = ?", c.ID, productID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "Item not found in cart")
			} else if err != nil {
				return err
			}

			if quantity <= 0 {
				if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).
					Update("quantity", quantity).Error; err != nil {
					return err
				}
			}

			if err := recomputeTotal(tx, c.ID); err != nil {
				return err
			}
			return reloadCart(tx, userID, &cart)
		}))
	})
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveItem deletes the line item for productID. Removing a product that
// is not in the cart is a no-op, but the user must have a cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (models.Cart, error) {
	var cart models.Cart
	err := withRetry(ctx, s.timeout, func(ctx context.Context) error {
		return storageErr(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			c, err := lockedCart(tx, userID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "Cart not found")
			} else if err != nil {
				return err
			}

			if err := tx.Where("cart_id = ? AND product_id = ?", c.ID, productID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}

			if err := recomputeTotal(tx, c.ID); err != nil {
				return err
			}
			return reloadCart(tx, userID, &cart)
		}))
	})
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func lockedCart(tx *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := lockForUpdate(tx).Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

// recomputeTotal rewrites the derived total from the line items in a
// single statement; it is never adjusted incrementally.
func recomputeTotal(tx *gorm.DB, cartID uint) error {
	return tx.Exec(
		"UPDATE carts SET total = (SELECT COALESCE(SUM(price * quantity), 0) FROM cart_items WHERE cart_id = ?), updated_at = ? WHERE id = ?",
		cartID, time.Now(), cartID,
	).Error
}

func reloadCart(tx *gorm.DB, userID string, out *models.Cart) error {
	if err := tx.Preload("Items").Where("user_id = ?", userID).First(out).Error; err != nil {
		return err
	}
	if out.Items == nil {
		out.Items = []models.CartItem{}
	}
	return nil
}

func emptyCart(userID string) models.Cart {
	return models.Cart{UserID: userID, Items: []models.CartItem{}, Total: 0}
}
