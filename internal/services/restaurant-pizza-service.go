package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the price and both references, then stores the association
	CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

// CreateRestaurantPizza checks the price before touching the database, so a
// bad price is reported even when the references are also wrong.
func (s *restaurantPizzaService) CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error) {
	if _, err := models.ValidatePrice(price); err != nil {
		return models.RestaurantPizza{}, err
	}

	rp := models.RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, pizzaID).Error; err != nil {
			return lookupError(err, "pizza", pizzaID)
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			return lookupError(err, "restaurant", restaurantID)
		}

		if err := tx.Omit("Pizza", "Restaurant").Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		rp.Pizza = &pizza
		rp.Restaurant = &restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}

func lookupError(err error, entity string, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, models.ErrInvalidReference)
	}
	return fmt.Errorf("get %s %d: %w", entity, id, err)
}
