package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID together with the restaurants selling it
	GetPizzaByID(id int) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Restaurant").
		First(&pizza, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, models.ErrPizzaNotFound
	}
	if err != nil {
		return models.Pizza{}, fmt.Errorf("get pizza %d: %w", id, err)
	}
	return pizza, nil
}
