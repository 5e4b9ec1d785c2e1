package crm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the CRM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	WebhookURL string
	SourceID   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
// CRM forwarding is disabled by default; leads are only logged.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   true,
		WebhookURL: "",
		SourceID:   "WEBFORM",
		TimeoutMs:  10000,
		MaxRetries: 1,
	}
}

// LoadConfig reads CRM configuration from environment variables,
// falling back to defaults for any unset values. Setting a webhook URL
// enables forwarding unless KEDOBOT_CRM_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("KEDOBOT_CRM_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
		cfg.Enabled = true
	}
	if v := os.Getenv("KEDOBOT_CRM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("KEDOBOT_CRM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("KEDOBOT_CRM_SOURCE_ID"); v != "" {
		cfg.SourceID = v
	}
	if v := os.Getenv("KEDOBOT_CRM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("KEDOBOT_CRM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
