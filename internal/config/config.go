package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(os.Getenv("APP_ENV")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver     string `json:"db_driver"`
	DBPath       string `json:"db_path"`
	DatabaseURL  string `json:"database_url"`
	DBHost       string `json:"db_host"`
	DBPort       string `json:"db_port"`
	DBName       string `json:"db_name"`
	DBUser       string `json:"db_user"`
	DBPassword   string `json:"db_password"`
	DBSSLMode    string `json:"db_sslmode"`
	SeedDatabase bool   `json:"seed_database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	AuthEnabled        bool     `json:"auth_enabled"`
	JWTSecret          string   `json:"jwt_secret"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], SeedDatabase: %t, LogLevel: %s, AuthEnabled: %t, JWTSecret: [REDACTED], CORSAllowedOrigins: %v}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBPath, maskDatabaseURL(c.DatabaseURL), c.DBHost, c.DBName, c.DBUser,
		c.SeedDatabase, c.LogLevel, c.AuthEnabled, c.CORSAllowedOrigins)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if a variable is present but malformed
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	authEnabled := GetEnvAsType("AUTH_ENABLED", false)
	jwtSecret := GetEnvWithDefault("JWT_SECRET", "")
	if authEnabled && jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is true")
	}

	config := &Config{
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:           driver,
		DBPath:             GetEnvWithDefault("DB_PATH", "app.db"),
		DatabaseURL:        dbURL,
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "restaurants"),
		DBUser:             GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		SeedDatabase:       GetEnvAsType("SEED_DATABASE", true),
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		AuthEnabled:        authEnabled,
		JWTSecret:          jwtSecret,
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the log level used when LOG_LEVEL is not set
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "", "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
