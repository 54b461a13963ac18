package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8090

[database]
host = "db"
user = "bakery"
password = "from-file"
dbname = "bakery"

[delivery]
timezone = "UTC"
safety_buffer_minutes = 20

[admin]
user_ids = [1, 42]
`)
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 20, cfg.Delivery.SafetyBufferMinutes)
	assert.Equal(t, 21, cfg.Delivery.SameDayCutoffHour)
	assert.Equal(t, 4, cfg.Delivery.DefaultPreparationHours)
	assert.True(t, cfg.Admin.IsAdmin(42))
	assert.False(t, cfg.Admin.IsAdmin(7))
	assert.Equal(t, "host=db port=5432 user=bakery password=from-env dbname=bakery sslmode=disable", cfg.Database.DSN())

	settings, err := cfg.DeliverySettings()
	require.NoError(t, err)
	assert.Equal(t, "UTC", settings.Location.String())
	assert.Equal(t, 20, settings.SafetyBufferMinutes)
}

func TestLoad_RejectsInvalidDeliverySettings(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "cutoff too late", content: "[delivery]\nsame_day_cutoff_hour = 25\ntimezone = \"UTC\""},
		{name: "negative buffer", content: "[delivery]\nsafety_buffer_minutes = -5\ntimezone = \"UTC\""},
		{name: "zero default prep", content: "[delivery]\ndefault_preparation_hours = 0\ntimezone = \"UTC\""},
		{name: "unknown timezone", content: "[delivery]\ntimezone = \"Mars/Olympus\""},
		{name: "cache without addr", content: "[cache]\nenabled = true\n[delivery]\ntimezone = \"UTC\""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
