// Package config loads Tempo configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Database
	DatabasePath string

	// Slot search
	HorizonDays int

	// Focus protection
	FocusHoursPerDay   int
	FocusPreferredTime string

	// Habits
	HabitFlexibilityScore int
}

// Load loads configuration from environment variables. A .env file is
// honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("TEMPO_LOG_LEVEL", "info"),
		LogFormat: getEnv("TEMPO_LOG_FORMAT", "text"),

		DatabasePath: getEnv("TEMPO_DB_PATH", defaultDatabasePath()),

		HorizonDays: getIntEnv("TEMPO_HORIZON_DAYS", 7),

		FocusHoursPerDay:   getIntEnv("TEMPO_FOCUS_HOURS", 2),
		FocusPreferredTime: getEnv("TEMPO_FOCUS_TIME", "morning"),

		HabitFlexibilityScore: getIntEnv("TEMPO_HABIT_FLEXIBILITY", 60),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon days must be positive, got %d", c.HorizonDays)
	}
	if c.FocusHoursPerDay <= 0 {
		return fmt.Errorf("focus hours per day must be positive, got %d", c.FocusHoursPerDay)
	}
	if c.HabitFlexibilityScore < 0 || c.HabitFlexibilityScore > 100 {
		return fmt.Errorf("habit flexibility score must be between 0 and 100, got %d", c.HabitFlexibilityScore)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tempo.db"
	}
	return filepath.Join(home, ".tempo", "tempo.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
