package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds process configuration read from the environment
type Settings struct {
	Addr         string
	LogLevel     string
	RulesFile    string
	CacheSize    int
	CacheTTL     time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadEnvFile loads a .env file for local development. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadSettings reads settings from environment variables
func LoadSettings() (*Settings, error) {
	s := &Settings{
		Addr:         getEnv("FINPLAN_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		RulesFile:    getEnv("FINPLAN_RULES", ""),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	size, err := strconv.Atoi(getEnv("FINPLAN_CACHE_SIZE", "1024"))
	if err != nil {
		return nil, fmt.Errorf("FINPLAN_CACHE_SIZE: %w", err)
	}
	if size < 0 {
		return nil, fmt.Errorf("FINPLAN_CACHE_SIZE cannot be negative")
	}
	s.CacheSize = size

	ttl, err := time.ParseDuration(getEnv("FINPLAN_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("FINPLAN_CACHE_TTL: %w", err)
	}
	s.CacheTTL = ttl

	if s.Addr == "" {
		return nil, fmt.Errorf("FINPLAN_ADDR is required")
	}

	return s, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
