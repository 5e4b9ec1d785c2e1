// Package config loads application settings from the environment, with
// optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/avoevodin/kedobot/internal/calc"
)

// Config holds top-level application settings. Subsystem settings
// (CRM, for one) live with their packages.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string

	// WorkingMinutesPerMonth converts HR time spent on paperwork into
	// salary money in the cost engine.
	WorkingMinutesPerMonth float64

	// NotifyChatID, when non-zero, receives a notice on every first
	// submission of a new user.
	NotifyChatID int64
}

// Default returns a Config with sensible defaults. The database lands
// in ~/.kedobot unless overridden.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:                 filepath.Join(home, ".kedobot", "kedobot.db"),
		WorkingMinutesPerMonth: calc.DefaultWorkingMinutesPerMonth,
	}, nil
}

// Load reads configuration from the environment on top of defaults.
// A .env file in the working directory is read first when present;
// real environment variables win over it.
func Load() (Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("KEDOBOT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KEDOBOT_WORKING_MINUTES"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("KEDOBOT_WORKING_MINUTES: %w", err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("KEDOBOT_WORKING_MINUTES must be positive, got %v", n)
		}
		cfg.WorkingMinutesPerMonth = n
	}
	if v := os.Getenv("KEDOBOT_NOTIFY_CHAT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("KEDOBOT_NOTIFY_CHAT: %w", err)
		}
		cfg.NotifyChatID = n
	}

	return cfg, nil
}
