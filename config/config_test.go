package config

import (
	"os"
	"strings"
	"testing"
)

func cleanupEnv() {
	for _, key := range GetEnvVars() {
		_ = os.Unsetenv(key)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.AntibioticDays != 10 {
		t.Errorf("Expected default antibiotic duration 10, got %d", cfg.AntibioticDays)
	}
	if cfg.SteroidDays != 7 {
		t.Errorf("Expected default steroid duration 7, got %d", cfg.SteroidDays)
	}
	if cfg.PRNDays != 30 {
		t.Errorf("Expected default PRN duration 30, got %d", cfg.PRNDays)
	}
	if cfg.ChronicDays != 30 {
		t.Errorf("Expected default chronic duration 30, got %d", cfg.ChronicDays)
	}
}

func TestLoadValidConfig(t *testing.T) {
	_ = os.Setenv("LOG_LEVEL", "debug")
	_ = os.Setenv("DEFAULT_DURATION_ANTIBIOTIC_DAYS", "7")
	_ = os.Setenv("DEFAULT_DURATION_CHRONIC_DAYS", "90")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.AntibioticDays != 7 {
		t.Errorf("Expected antibiotic duration 7, got %d", cfg.AntibioticDays)
	}
	if cfg.ChronicDays != 90 {
		t.Errorf("Expected chronic duration 90, got %d", cfg.ChronicDays)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_ = os.Setenv("LOG_LEVEL", "verbose")
	defer cleanupEnv()

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("Expected LOG_LEVEL in error, got %v", err)
	}
}

func TestInvalidDurations(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"negative antibiotic days", "DEFAULT_DURATION_ANTIBIOTIC_DAYS", "-1"},
		{"zero steroid days", "DEFAULT_DURATION_STEROID_DAYS", "0"},
		{"prn days over a year", "DEFAULT_DURATION_PRN_DAYS", "400"},
		{"chronic days over a year", "DEFAULT_DURATION_CHRONIC_DAYS", "1000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanupEnv()
			_ = os.Setenv(tc.key, tc.value)
			defer cleanupEnv()

			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("Expected %s in error, got %v", tc.key, err)
			}
		})
	}
}

func TestNonNumericDurationFallsBackToDefault(t *testing.T) {
	_ = os.Setenv("DEFAULT_DURATION_PRN_DAYS", "a month")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.PRNDays != 30 {
		t.Errorf("Expected non-numeric value to fall back to 30, got %d", cfg.PRNDays)
	}
}

func TestGetEnvVars(t *testing.T) {
	vars := GetEnvVars()
	if len(vars) != 5 {
		t.Errorf("Expected 5 environment variables, got %d", len(vars))
	}
}
