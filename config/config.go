// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	DatabaseURL      string
	DBDebug          bool
	DBMaxOpenConns   int
	HTTPPort         int
	CORSAllowOrigins string
	SeedDemoData     bool
	ShutdownTimeout  time.Duration
}

// Load reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() Config {
	return Config{
		DatabaseURL:      getEnv("DATABASE_URL", "./krisly_beauty.db"),
		DBDebug:          getEnvBool("DB_DEBUG", false),
		DBMaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
		HTTPPort:         getEnvInt("HTTP_PORT", 8000),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", true),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool returns environment variable as bool or default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("Warning: invalid bool value for %s: %s, using default: %t", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as time.Duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
