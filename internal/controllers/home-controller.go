package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexBanner = "<h1>Code challenge</h1>"

// Index godoc
// @Summary Landing page
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexBanner))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-pizza-api",
	})
}
