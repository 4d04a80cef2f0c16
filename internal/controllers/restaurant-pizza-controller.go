package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza sets the price of a pizza at a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
	metrics *metrics.Manager
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, m *metrics.Manager) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, metrics: m}
}

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *int `json:"price" binding:"required"`
	PizzaID      *int `json:"pizza_id" binding:"required"`
	RestaurantID *int `json:"restaurant_id" binding:"required"`
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Price a pizza at a restaurant. The price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.rejectGeneric(ctx, err)
		return
	}

	rp, err := c.service.CreateRestaurantPizza(*req.Price, *req.PizzaID, *req.RestaurantID)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.metrics.ValidationFailed(validationErr.Field)
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr.Message))
			return
		}
		// Reference and storage failures share the generic message
		c.rejectGeneric(ctx, err)
		return
	}

	c.metrics.RestaurantPizzaCreated()
	log.WithFields(log.Fields{
		"restaurant_pizza_id": rp.ID,
		"restaurant_id":       rp.RestaurantID,
		"pizza_id":            rp.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, rp.Detail())
}

func (c *restaurantPizzaController) rejectGeneric(ctx *gin.Context, err error) {
	log.WithError(err).Warn("Restaurant pizza rejected")
	c.metrics.ValidationFailed("invalid")
	ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgValidationErrors))
}
