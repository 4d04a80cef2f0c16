package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	router := routes.SetupRouter(routes.Dependencies{
		DB:      db,
		Config:  configuration,
		Metrics: metrics.Default(),
		Logger:  log.StandardLogger(),
	})

	serve(router, fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter
// LOG_LEVEL wins over the level derived from APP_ENV
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(conf.Environment)
	if parsed, err := log.ParseLevel(conf.LogLevel); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDatabase {
		_, err := database.SeedDatabase(db)
		checkPanicErr(err)
	}
	return db
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight requests
func serve(handler http.Handler, addr string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
