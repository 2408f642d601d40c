package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	ApiBaseUrl    string // Base URL of the remote LMS API
	SessionSecret string
	SessionTTL    int // Session cookie lifetime in hours
	PageLimit     int // Fixed page size for the module catalog
	ApiTimeout    int // Upstream request timeout in seconds
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "3000"),
		ApiBaseUrl:    getEnv("LMS_API_URL", "http://localhost:8080/api/v1"),
		SessionSecret: getEnv("SESSION_SECRET", "defaultSecret"),
		SessionTTL:    getEnvInt("SESSION_TTL_HOURS", 24),
		PageLimit:     getEnvInt("PAGE_LIMIT", 30),
		ApiTimeout:    getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 15),
	}

	// Validate critical configuration
	if AppConfig.SessionSecret == "defaultSecret" {
		log.Println("Warning: Using default SESSION_SECRET. Update it in your environment.")
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

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
