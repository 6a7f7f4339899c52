package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Storage  StorageConfig
	WhatsApp WhatsAppConfig
	Logger   LoggerConfig
}

// APIConfig holds settings for the remote clinic API.
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// StorageConfig holds settings for locally persisted client state.
type StorageConfig struct {
	// CredentialsFile is where the auth token and profile are kept.
	// Empty means a default path under the user config directory.
	CredentialsFile string
}

// WhatsAppConfig holds the numbers used for WhatsApp hand-offs.
type WhatsAppConfig struct {
	OrderNumber       string // receives order notifications
	AppointmentNumber string // receives appointment requests
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: getEnvAsInt("HTTP_TIMEOUT", 15),
		},
		Storage: StorageConfig{
			CredentialsFile: getEnv("CREDENTIALS_FILE", ""),
		},
		WhatsApp: WhatsAppConfig{
			OrderNumber:       getEnv("WHATSAPP_ORDER_NUMBER", "919876543210"),
			AppointmentNumber: getEnv("WHATSAPP_APPOINTMENT_NUMBER", "917021804152"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}

	if c.API.Timeout < 1 {
		return fmt.Errorf("HTTP timeout must be at least 1 second")
	}

	if c.WhatsApp.OrderNumber == "" {
		return fmt.Errorf("WhatsApp order number is required")
	}

	if c.WhatsApp.AppointmentNumber == "" {
		return fmt.Errorf("WhatsApp appointment number is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
