package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Debug("Database schema migrated")
	return nil
}

// SeedDatabase inserts the initial restaurants and pizzas when both tables are empty
// It reports whether any rows were inserted
func SeedDatabase(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		seedRestaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&seedRestaurants).Error; err != nil {
			return err
		}

		seedPizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		return tx.Create(&seedPizzas).Error
	})
	if err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}
	log.Info("Database seeded successfully")
	return true, nil
}
