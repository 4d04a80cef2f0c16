package models

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// Deleting a restaurant removes its prices as well
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
