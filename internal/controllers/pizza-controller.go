package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza with the restaurants selling it
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, models.PizzaSummaries(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants selling it and their prices
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if errors.Is(err, models.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("pizza_id", id).Error("Failed to retrieve pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, pizza.Detail())
}
