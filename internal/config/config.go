package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultConnectTimeout bounds the initial connection and server selection
// when no explicit timeout is configured.
const DefaultConnectTimeout = 5 * time.Second

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	MongoURI       string
	MongoDatabase  string
	ConnectTimeout time.Duration // bounds the initial connection/server selection
	QueryTimeout   time.Duration // per-request query deadline; 0 means unbounded
	StatusSchedule string        // cron expression for the status reporter
}

// Load loads configuration from environment variables or sets defaults.
// The Mongo connection values are deliberately not validated here: a bad or
// absent URI surfaces as a failed connection attempt, which the server
// tolerates by starting in degraded mode.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DB", "backup_archive"),
		ConnectTimeout: time.Duration(getEnvInt("MONGODB_CONNECT_TIMEOUT", int(DefaultConnectTimeout/time.Second))) * time.Second,
		QueryTimeout:   time.Duration(getEnvInt("QUERY_TIMEOUT", 0)) * time.Second,
		StatusSchedule: getEnv("STATUS_LOG_SCHEDULE", "*/5 * * * *"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper to get an integer environment variable, falling back on the
// default when the variable is absent or not numeric.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
