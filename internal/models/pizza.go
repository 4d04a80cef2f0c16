package models

// Pizza represents a pizza offered by one or more restaurants
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
