package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas
	GetRestaurantByID(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every restaurant pizza referencing it
	DeleteRestaurant(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, models.ErrRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the dependent rows first so the cascade does not
// rely on the driver honouring ON DELETE CASCADE.
func (s *restaurantService) DeleteRestaurant(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRestaurantNotFound
			}
			return fmt.Errorf("get restaurant %d: %w", id, err)
		}

		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("delete restaurant pizzas of %d: %w", id, err)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}
