// Package config has the configuration for the dosing engine
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all engine configuration. The frequency catalog and unit
// constants are fixed data and deliberately not configurable; only logging
// and the default-duration policy are.
type Config struct {
	LogLevel string

	// Default treatment durations in days by drug class, consumed by
	// regimen.NewResolverFromConfig.
	AntibioticDays int
	SteroidDays    int
	PRNDays        int
	ChronicDays    int
}

// Load loads and validates configuration from environment variables,
// reading a .env file first when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		AntibioticDays: getIntEnvWithDefault("DEFAULT_DURATION_ANTIBIOTIC_DAYS", 10),
		SteroidDays:    getIntEnvWithDefault("DEFAULT_DURATION_STEROID_DAYS", 7),
		PRNDays:        getIntEnvWithDefault("DEFAULT_DURATION_PRN_DAYS", 30),
		ChronicDays:    getIntEnvWithDefault("DEFAULT_DURATION_CHRONIC_DAYS", 30),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateDurationDays(cfg.AntibioticDays, "DEFAULT_DURATION_ANTIBIOTIC_DAYS"); err != nil {
		return err
	}
	if err := validateDurationDays(cfg.SteroidDays, "DEFAULT_DURATION_STEROID_DAYS"); err != nil {
		return err
	}
	if err := validateDurationDays(cfg.PRNDays, "DEFAULT_DURATION_PRN_DAYS"); err != nil {
		return err
	}
	if err := validateDurationDays(cfg.ChronicDays, "DEFAULT_DURATION_CHRONIC_DAYS"); err != nil {
		return err
	}

	return nil
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateDurationDays validates a default-duration configuration value
func validateDurationDays(days int, configName string) error {
	if days <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, days)
	}

	if days > 365 { // 1 year maximum supply
		return fmt.Errorf("%s is too large (max 365 days), got: %d", configName, days)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"LOG_LEVEL",
		"DEFAULT_DURATION_ANTIBIOTIC_DAYS",
		"DEFAULT_DURATION_STEROID_DAYS",
		"DEFAULT_DURATION_PRN_DAYS",
		"DEFAULT_DURATION_CHRONIC_DAYS",
	}
}
