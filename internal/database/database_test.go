package database

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite file enables foreign keys",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite with existing query",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "app.db?cache=shared"},
			expected: "app.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite default path is in memory",
			cfg:      DatabaseConfig{},
			expected: ":memory:?_foreign_keys=on",
		},
		{
			name:     "postgres url wins",
			cfg:      DatabaseConfig{Driver: "postgres", URL: "postgres://u:p@h:5432/db", Host: "ignored"},
			expected: "postgres://u:p@h:5432/db",
		},
		{
			name:     "postgres fields",
			cfg:      DatabaseConfig{Driver: "postgresql", Host: "h", User: "u", Password: "p", Name: "db", Port: "5432", SSLMode: "disable"},
			expected: "host=h user=u password=p dbname=db port=5432 sslmode=disable",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(&config.Config{DBDriver: "sqlite", DBPath: "x.db", DBUser: "bob"})
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "x.db", cfg.Path)
	assert.Equal(t, "bob", cfg.User)
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	seeded, err := SeedDatabase(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var restaurants, pizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)

	seeded, err = SeedDatabase(db)
	require.NoError(t, err)
	assert.False(t, seeded, "second run must not insert duplicates")
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	err = db.Create(&models.RestaurantPizza{Price: 10, PizzaID: 99, RestaurantID: 99}).Error
	assert.Error(t, err)
}

func TestDeletesCascadeToRestaurantPizzas(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	restaurant := models.Restaurant{Name: "Dough", Address: "1 Main St"}
	require.NoError(t, db.Create(&restaurant).Error)
	plain := models.Pizza{Name: "Plain", Ingredients: "Dough, Tomato, Cheese"}
	pepperoni := models.Pizza{Name: "Pepperoni", Ingredients: "Dough, Tomato, Cheese, Pepperoni"}
	require.NoError(t, db.Create(&plain).Error)
	require.NoError(t, db.Create(&pepperoni).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 10, PizzaID: plain.ID, RestaurantID: restaurant.ID}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 12, PizzaID: pepperoni.ID, RestaurantID: restaurant.ID}).Error)

	count := func(column string, id int) int64 {
		var n int64
		require.NoError(t, db.Model(&models.RestaurantPizza{}).Where(column+" = ?", id).Count(&n).Error)
		return n
	}

	require.NoError(t, db.Delete(&models.Pizza{}, plain.ID).Error)
	assert.Equal(t, int64(0), count("pizza_id", plain.ID), "deleting a pizza removes its prices")
	assert.Equal(t, int64(1), count("pizza_id", pepperoni.ID))

	require.NoError(t, db.Delete(&models.Restaurant{}, restaurant.ID).Error)
	assert.Equal(t, int64(0), count("restaurant_id", restaurant.ID), "deleting a restaurant removes its prices")
}
