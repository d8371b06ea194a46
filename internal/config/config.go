package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port               string
	DatabaseURL        string
	Version            string
	LogLevel           string
	OpenAIKey          string
	OpenAITimeout      int    // Formatting service timeout in seconds (the only bound imposed on the external call)
	ContactCacheTTL    int    // Per-business contact list cache TTL in minutes
	SelfAlias          string // First-person alias the user signs with; never matched as a contact
	SendGridAPIKey     string // SendGrid API key for ops alert emails
	OpsAlertEmail      string // Where formatting-failure alerts are sent
	EnableFailureAlert bool   // Whether to email ops when a save lands with formatting_status=failed
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Version:            getEnv("VERSION", "1.0.0"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAITimeout:      getEnvInt("OPENAI_TIMEOUT", 60),
		ContactCacheTTL:    getEnvInt("CONTACT_CACHE_TTL_MINUTES", 15),
		SelfAlias:          os.Getenv("SELF_ALIAS"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		OpsAlertEmail:      os.Getenv("OPS_ALERT_EMAIL"),
		EnableFailureAlert: getEnvBool("ENABLE_FAILURE_ALERTS", false),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as boolean with a default fallback
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "corlog").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
