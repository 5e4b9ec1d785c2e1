package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".kedobot")
	assert.Equal(t, 10080.0, cfg.WorkingMinutesPerMonth)
	assert.Zero(t, cfg.NotifyChatID)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KEDOBOT_DB", "/tmp/kedobot-test.db")
	t.Setenv("KEDOBOT_WORKING_MINUTES", "9600")
	t.Setenv("KEDOBOT_NOTIFY_CHAT", "-100123456")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kedobot-test.db", cfg.DBPath)
	assert.Equal(t, 9600.0, cfg.WorkingMinutesPerMonth)
	assert.Equal(t, int64(-100123456), cfg.NotifyChatID)
}

func TestLoad_RejectsNonPositiveMinutes(t *testing.T) {
	t.Setenv("KEDOBOT_WORKING_MINUTES", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("KEDOBOT_WORKING_MINUTES", "-5")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_RejectsGarbage(t *testing.T) {
	t.Setenv("KEDOBOT_NOTIFY_CHAT", "main-chat")
	_, err := Load()
	require.Error(t, err)
}
