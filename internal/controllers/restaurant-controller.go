package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza prices
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
	metrics *metrics.Manager
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, m *metrics.Manager) RestaurantController {
	return &restaurantController{service: service, metrics: m}
}

// pathID parses the :id path parameter; only plain digit strings match a row
func pathID(ctx *gin.Context) (int, bool) {
	raw := ctx.Param("id")
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant pizzas and their pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza referencing it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	err := c.service.DeleteRestaurant(id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}

	c.metrics.RestaurantDeleted()
	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}
