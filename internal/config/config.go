package config

import (
	"os"
	"strconv"
	"time"

	"bioskop/internal/cache"
	"bioskop/internal/database"
	"bioskop/internal/messaging"

	"github.com/joho/godotenv"
)

// Config holds the full application configuration.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// CatalogRefDate pins "today" for the now-playing listing. The demo data
	// set lives entirely in December 2024, so deployments seeded with it set
	// CATALOG_REF_DATE=2024-12-01. Empty means the real current date.
	CatalogRefDate string

	CatalogCacheTTL time.Duration

	Database database.Config
	NATS     messaging.Config
	Cache    cache.Config
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		CatalogRefDate:  getEnv("CATALOG_REF_DATE", ""),
		CatalogCacheTTL: time.Duration(getEnvInt("CATALOG_CACHE_TTL_SEC", 30)) * time.Second,

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "bioskop"),
			Password:           getEnv("DB_PASSWORD", "bioskop123"),
			DBName:             getEnv("DB_NAME", "bioskop"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "bioskop"),
			ClientID:  getEnv("NATS_CLIENT_ID", "bioskop-api"),
		},

		Cache: cache.Config{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
