package models

import "time"

// Category enumerates the menu sections the display app renders.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
	CategoryDrink     Category = "drink"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    Category  `json:"category" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
