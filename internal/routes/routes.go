package routes

import (
	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies groups what the router needs from the process
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Manager
	Logger  logrus.FieldLogger
}

// SetupRouter initializes the Gin router with the middleware chain and all routes
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Default()
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.Config.CORSAllowedOrigins),
	)

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(deps.DB), deps.Metrics)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(deps.DB))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(deps.DB), deps.Metrics)

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// Public reads
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)

	// Writes are open unless AUTH_ENABLED asks for an admin bearer token
	writes := router.Group("/")
	if deps.Config.AuthEnabled {
		writes.Use(middleware.BearerAuth([]byte(deps.Config.JWTSecret)), middleware.RequireRole("admin"))
	}
	{
		writes.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)
		writes.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
