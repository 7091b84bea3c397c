package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port        string
	FrontendDir string
	Database    DatabaseConfig
	AI          AIConfig
	Scraper     ScraperConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Verbose  bool
}

// AIConfig holds the valuation model configuration
type AIConfig struct {
	APIKey string
	Model  string
}

// ScraperConfig holds the listing page fetcher configuration
type ScraperConfig struct {
	Headless   bool
	Timeout    time.Duration
	MaxRetries int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		FrontendDir: getEnv("FRONTEND_DIR", "./public"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "vpricescan"),
			Verbose:  getEnv("DB_VERBOSE", "false") == "true",
		},
		AI: AIConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Scraper: ScraperConfig{
			Headless:   getEnv("SCRAPER_HEADLESS", "true") == "true",
			Timeout:    time.Duration(getEnvInt("SCRAPER_TIMEOUT_SECONDS", 20)) * time.Second,
			MaxRetries: getEnvInt("SCRAPER_MAX_RETRIES", 2),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
