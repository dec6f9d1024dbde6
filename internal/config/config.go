package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string

	// Logging configuration
	LogLevel  string
	LogFormat string // "json" or "pretty"

	// Storage configuration
	StoreDriver    string
	PostgresDBURL  string
	DBMaxConns       int
	DBQueryTimeout   time.Duration
	DBConnectRetries int

	// Observability
	MetricsEnabled bool
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	loadDotEnv()

	config := &Config{
		// Server configuration
		Port:            getEnvInt("PORT", 8080),
		ReadTimeout:     time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout:    time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		GinMode:         getEnvString("GIN_MODE", "release"),

		// Logging configuration
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "json"),

		// Storage configuration
		StoreDriver:      strings.ToLower(getEnvString("STORE_DRIVER", StoreDriverPostgres)),
		PostgresDBURL:    os.Getenv("POSTGRES_DB_URL"),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		DBQueryTimeout:   time.Duration(getEnvInt("DB_QUERY_TIMEOUT", 30)) * time.Second,
		DBConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 5),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads a .env file from the project root or the current directory, if present
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Could not determine executable path: %v", err)
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading .env file. Using environment variables.")
		} else {
			log.Println("Loaded environment variables from current directory .env file")
		}
	} else {
		log.Printf("Loaded environment variables from %s", envPath)
	}
}

// validateConfig rejects unusable configuration and logs warnings for suspicious values
func validateConfig(config *Config) error {
	switch config.StoreDriver {
	case StoreDriverPostgres:
		if config.PostgresDBURL == "" {
			return fmt.Errorf("POSTGRES_DB_URL environment variable is not set")
		}
	case StoreDriverMemory:
		log.Println("Warning: Using in-memory store. Data is lost on restart.")
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (expected %q or %q)", config.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	if config.LogFormat != "json" && config.LogFormat != "pretty" {
		log.Printf("Warning: Unknown LOG_FORMAT %q, using json", config.LogFormat)
		config.LogFormat = "json"
	}

	if config.DBMaxConns < 1 {
		log.Printf("Warning: DB_MAX_CONNS must be positive, using 10")
		config.DBMaxConns = 10
	}

	return nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
