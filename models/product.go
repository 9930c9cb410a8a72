package models

import "time"

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
	CategoryOther       Category = "other"
)

// ValidCategory reports whether c is one of the fixed catalog categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks,
		CategoryHome, CategorySports, CategoryToys, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Category    Category  `gorm:"type:VARCHAR(20);index" json:"category"`
	Image       string    `json:"image"`
	Stock       int       `gorm:"default:0;check:stock >= 0" json:"stock"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
