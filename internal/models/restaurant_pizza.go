package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the priced association between a restaurant and a pizza
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey" json:"id"`
	Price        int `gorm:"not null" json:"price"`
	RestaurantID int `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      int `gorm:"not null;index" json:"pizza_id"`

	Restaurant *Restaurant `json:"-"`
	Pizza      *Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// BeforeSave rejects out of range prices for every write path
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	_, err := ValidatePrice(rp.Price)
	return err
}

// ValidatePrice returns the price unchanged when it lies in [MinPrice, MaxPrice]
func ValidatePrice(price int) (int, error) {
	if price < MinPrice || price > MaxPrice {
		return 0, &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("Price must be between %d and %d", MinPrice, MaxPrice),
		}
	}
	return price, nil
}
