// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
)

// StoreConfig holds configuration for the persistent list store
type StoreConfig struct {
	// RedisEnabled selects the Redis backend; the in-memory store is used otherwise
	RedisEnabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port         string
	TemplatesDir string
}

// GetStoreConfig loads store configuration from environment variables
func GetStoreConfig() StoreConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return StoreConfig{
		RedisEnabled: getEnvBool("REDIS_ENABLED", false),
		URI:          getEnv("REDIS_URI", ""),
		Host:         getEnv("REDIS_HOST", "localhost"),
		Port:         getEnv("REDIS_PORT", "6379"),
		Username:     getEnv("REDIS_USERNAME", ""),
		Password:     getEnv("REDIS_PASSWORD", ""),
		DB:           db,
		KeyPrefix:    getEnv("REDIS_KEY_PREFIX", "roombook:"),
	}
}

// GetServerConfig loads HTTP server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:         getEnv("PORT", "8080"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "./internal/web/templates"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
