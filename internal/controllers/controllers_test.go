package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	metrics *metrics.Manager
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	m := metrics.NewManager()
	restaurants := NewRestaurantController(services.NewRestaurantService(db), m)
	pizzas := NewPizzaController(services.NewPizzaService(db))
	restaurantPizzas := NewRestaurantPizzaController(services.NewRestaurantPizzaService(db), m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Index)
	router.GET("/health", HealthCheck)
	router.GET("/restaurants", restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurants.DeleteRestaurant)
	router.GET("/pizzas", pizzas.GetAllPizzas)
	router.GET("/pizzas/:id", pizzas.GetPizzaByID)
	router.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)

	return &testEnv{db: db, router: router, metrics: m}
}

func (e *testEnv) seed(t *testing.T) (models.Restaurant, models.Pizza) {
	restaurant := models.Restaurant{Name: "Dough", Address: "1 Main St"}
	require.NoError(t, e.db.Create(&restaurant).Error)
	pizza := models.Pizza{Name: "Plain", Ingredients: "Dough, Tomato, Cheese"}
	require.NoError(t, e.db.Create(&pizza).Error)
	return restaurant, pizza
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestIndex(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHealthCheck(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]string](t, w)["status"])
}

func TestGetAllRestaurants(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/restaurants", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	restaurant, pizza := env.seed(t)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/restaurant_pizzas",
		fmt.Sprintf(`{"price": 5, "pizza_id": %d, "restaurant_id": %d}`, pizza.ID, restaurant.ID)).Code)

	w = env.do(http.MethodGet, "/restaurants", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id": 1, "name": "Dough", "address": "1 Main St"}]`, w.Body.String())

	items := decode[[]map[string]any](t, w)
	assert.NotContains(t, items[0], "restaurant_pizzas")
}

func TestGetRestaurantByID(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)
	require.Equal(t, http.StatusCreated,
		env.do(http.MethodPost, "/restaurant_pizzas", `{"price": 15, "pizza_id": 1, "restaurant_id": 1}`).Code)

	t.Run("includes nested restaurant pizzas", func(t *testing.T) {
		w := env.do(http.MethodGet, "/restaurants/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"id": 1, "name": "Dough", "address": "1 Main St",
			"restaurant_pizzas": [{
				"id": 1, "price": 15, "pizza_id": 1, "restaurant_id": 1,
				"pizza": {"id": 1, "name": "Plain", "ingredients": "Dough, Tomato, Cheese"}
			}]
		}`, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/restaurants/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	})

	t.Run("non integer id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/restaurants/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	})

	t.Run("signed ids match no row", func(t *testing.T) {
		for _, path := range []string{"/restaurants/+1", "/restaurants/-1", "/pizzas/+1"} {
			w := env.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code, path)
		}
		w := env.do(http.MethodDelete, "/restaurants/+1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		w = env.do(http.MethodGet, "/restaurants/1", "")
		assert.Equal(t, http.StatusOK, w.Code, "restaurant 1 survives a signed delete")
	})
}

func TestRestaurantWithoutPizzasHasEmptyList(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodGet, "/restaurants/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 1, "name": "Dough", "address": "1 Main St", "restaurant_pizzas": []}`, w.Body.String())
}

func TestDeleteRestaurant(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)
	require.Equal(t, http.StatusCreated,
		env.do(http.MethodPost, "/restaurant_pizzas", `{"price": 15, "pizza_id": 1, "restaurant_id": 1}`).Code)

	w := env.do(http.MethodDelete, "/restaurants/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var remaining int64
	env.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&remaining)
	assert.Equal(t, int64(0), remaining)

	w = env.do(http.MethodGet, "/restaurants/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/restaurants/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	expected := `
# HELP restaurant_pizza_api_restaurants_deleted_total Total number of restaurants deleted
# TYPE restaurant_pizza_api_restaurants_deleted_total counter
restaurant_pizza_api_restaurants_deleted_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(env.metrics.Registry(), strings.NewReader(expected),
		"restaurant_pizza_api_restaurants_deleted_total"))
}

func TestGetAllPizzas(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(http.MethodGet, "/pizzas", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	env.seed(t)
	w = env.do(http.MethodGet, "/pizzas", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id": 1, "name": "Plain", "ingredients": "Dough, Tomato, Cheese"}]`, w.Body.String())
}

func TestGetPizzaByID(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)
	require.Equal(t, http.StatusCreated,
		env.do(http.MethodPost, "/restaurant_pizzas", `{"price": 9, "pizza_id": 1, "restaurant_id": 1}`).Code)

	w := env.do(http.MethodGet, "/pizzas/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1, "name": "Plain", "ingredients": "Dough, Tomato, Cheese",
		"restaurant_pizzas": [{
			"id": 1, "price": 9, "pizza_id": 1, "restaurant_id": 1,
			"restaurant": {"id": 1, "name": "Dough", "address": "1 Main St"}
		}]
	}`, w.Body.String())

	w = env.do(http.MethodGet, "/pizzas/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Pizza not found"}`, w.Body.String())
}

func TestCreateRestaurantPizza(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	t.Run("valid request", func(t *testing.T) {
		w := env.do(http.MethodPost, "/restaurant_pizzas", `{"price": 15, "pizza_id": 1, "restaurant_id": 1}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"id": 1, "price": 15, "pizza_id": 1, "restaurant_id": 1,
			"pizza": {"id": 1, "name": "Plain", "ingredients": "Dough, Tomato, Cheese"},
			"restaurant": {"id": 1, "name": "Dough", "address": "1 Main St"}
		}`, w.Body.String())
	})

	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "price too high", body: `{"price": 31, "pizza_id": 1, "restaurant_id": 1}`, expected: "Price must be between 1 and 30"},
		{name: "price zero", body: `{"price": 0, "pizza_id": 1, "restaurant_id": 1}`, expected: "Price must be between 1 and 30"},
		{name: "bad price with bad references", body: `{"price": 31, "pizza_id": 9, "restaurant_id": 9}`, expected: "Price must be between 1 and 30"},
		{name: "unknown pizza", body: `{"price": 10, "pizza_id": 9, "restaurant_id": 1}`, expected: "validation errors"},
		{name: "unknown restaurant", body: `{"price": 10, "pizza_id": 1, "restaurant_id": 9}`, expected: "validation errors"},
		{name: "missing price", body: `{"pizza_id": 1, "restaurant_id": 1}`, expected: "validation errors"},
		{name: "missing pizza id", body: `{"price": 10, "restaurant_id": 1}`, expected: "validation errors"},
		{name: "string price", body: `{"price": "ten", "pizza_id": 1, "restaurant_id": 1}`, expected: "validation errors"},
		{name: "malformed json", body: `{"price": `, expected: "validation errors"},
		{name: "empty object", body: `{}`, expected: "validation errors"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/restaurant_pizzas", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, []string{tt.expected}, decode[models.ValidationErrorResponse](t, w).Errors)
		})
	}

	var stored int64
	env.db.Model(&models.RestaurantPizza{}).Count(&stored)
	assert.Equal(t, int64(1), stored, "rejected requests must not persist anything")
}

func TestCreateRestaurantPizzaIsVisibleOnRestaurant(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/restaurant_pizzas", `{"price": 30, "pizza_id": 1, "restaurant_id": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.RestaurantPizzaDetail](t, w)
	assert.NotZero(t, created.ID)

	detail := decode[models.RestaurantDetail](t, env.do(http.MethodGet, "/restaurants/1", ""))
	require.Len(t, detail.RestaurantPizzas, 1)
	assert.Equal(t, created.ID, detail.RestaurantPizzas[0].ID)
	assert.Equal(t, 30, detail.RestaurantPizzas[0].Price)
}
