package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "WEBFORM", cfg.SourceID)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_WebhookEnables(t *testing.T) {
	t.Setenv("KEDOBOT_CRM_WEBHOOK_URL", "https://example.bitrix24.ru/rest/1/token")
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "https://example.bitrix24.ru/rest/1/token", cfg.WebhookURL)
}

func TestLoadConfig_ExplicitDisableWins(t *testing.T) {
	t.Setenv("KEDOBOT_CRM_WEBHOOK_URL", "https://example.bitrix24.ru/rest/1/token")
	t.Setenv("KEDOBOT_CRM_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("KEDOBOT_CRM_SOURCE_ID", "TGBOT")
	t.Setenv("KEDOBOT_CRM_TIMEOUT_MS", "2500")
	t.Setenv("KEDOBOT_CRM_MAX_RETRIES", "0")
	cfg := LoadConfig()
	assert.Equal(t, "TGBOT", cfg.SourceID)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("KEDOBOT_CRM_TIMEOUT_MS", "soon")
	t.Setenv("KEDOBOT_CRM_MAX_RETRIES", "-2")
	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
