package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	DatabaseURL string

	JWTSecret string

	// StorageTimeout bounds every storage round-trip; operations that
	// exceed it fail as unavailable rather than blocking the request.
	StorageTimeout time.Duration
}

// Load reads configuration from the environment (and .env if present).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:         getenv("APP_ENV", "dev"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    databaseURL(),
		JWTSecret:      getenv("JWT_SECRET", "dev-only-secret"),
		StorageTimeout: time.Duration(getenvInt("STORAGE_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

// databaseURL prefers DATABASE_URL and falls back to discrete DB_* parts.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "storefront"),
		getenv("DB_PORT", "5432"),
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
