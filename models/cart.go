package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem carries a snapshot of the product taken when the item was
// added; later catalog changes do not reprice a cart.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    uint      `gorm:"uniqueIndex:uniq_cart_product" json:"-"`
	ProductID string    `gorm:"uniqueIndex:uniq_cart_product;not null" json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"-"`
}
