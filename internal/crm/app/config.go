package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Required: issuer claim for tokens
	DatabaseFile string // Optional: path to SQLite database file (default: ./crm.db)
	PepperFile   string // Optional: path to pepper file for password hashing (default: ./pepper)
	KeyFile      string // Optional: path to the Ed25519 signing key PEM (default: ./signing.key)

	AccessTokenTTL       time.Duration // Optional: access token lifetime (default: 24h)
	ResetTokenTTL        time.Duration // Optional: reset token lifetime (default: 1h)
	OTPTTL               time.Duration // Optional: verification code lifetime (default: 10m)
	APIKeyTTL            time.Duration // Optional: API key lifetime (default: 90 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("CRM_ISSUER"),
		DatabaseFile:         getEnvOrDefault("CRM_DATABASE_FILE", "crm.db"),
		PepperFile:           getEnvOrDefault("CRM_PEPPER_FILE", "pepper"),
		KeyFile:              getEnvOrDefault("CRM_KEY_FILE", "signing.key"),
		AccessTokenTTL:       getEnvDurationOrDefault("CRM_ACCESS_TOKEN_TTL", 24*time.Hour),
		ResetTokenTTL:        getEnvDurationOrDefault("CRM_RESET_TOKEN_TTL", time.Hour),
		OTPTTL:               getEnvDurationOrDefault("CRM_OTP_TTL", 10*time.Minute),
		APIKeyTTL:            getEnvDurationOrDefault("CRM_API_KEY_TTL", 90*24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "prospectd"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
