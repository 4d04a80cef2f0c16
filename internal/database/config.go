package database

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration. URL wins over the discrete fields when set.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxRetries bounds connection attempts, zero means the default
	MaxRetries int
}

// FromAppConfig extracts the database settings from the application configuration
func FromAppConfig(c *config.Config) DatabaseConfig {
	return DatabaseConfig{
		Driver:   c.DBDriver,
		URL:      c.DatabaseURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
// SQLite connections always enable foreign key enforcement
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		path := c.Path
		if path == "" {
			path = ":memory:"
		}
		if strings.Contains(path, "_foreign_keys=") {
			return path
		}
		if strings.Contains(path, "?") {
			return path + "&_foreign_keys=on"
		}
		return path + "?_foreign_keys=on"
	default:
		return ""
	}
}

func (c *DatabaseConfig) isSQLite() bool {
	driver := strings.ToLower(c.Driver)
	return driver == "sqlite" || driver == ""
}
