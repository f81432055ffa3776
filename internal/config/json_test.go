package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"ui": { "locale": "en-GB", "sort_polarity": "documented", "log_file": "ui.log" },
		"notifications": { "auto_dismiss": "5s", "flash": "5s", "fade": "300ms", "clipboard_notice": "2s" },
		"connectivity": { "probe_url": "https://passes.example.org/", "probe_interval": "10s", "probe_timeout": 3000000000 },
		"storage": {
			"cache": { "dsn": "cache.db" },
			"downloads": { "dir": "downloads", "base_url": "https://passes.example.org" }
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "en-GB", cfg.UI.Locale)
	assert.Equal(t, "documented", cfg.UI.SortPolarity)
	assert.Equal(t, "ui.log", cfg.UI.LogFile)
	assert.Equal(t, 5*time.Second, cfg.Notifications.AutoDismiss)
	assert.Equal(t, 300*time.Millisecond, cfg.Notifications.Fade)
	assert.Equal(t, 2*time.Second, cfg.Notifications.ClipboardNotice)
	assert.Equal(t, "https://passes.example.org/", cfg.Connectivity.ProbeURL)
	assert.Equal(t, 10*time.Second, cfg.Connectivity.ProbeInterval)
	assert.Equal(t, 3*time.Second, cfg.Connectivity.ProbeTimeout)
	assert.Equal(t, "cache.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, "downloads", cfg.Storage.Downloads.Dir)
	assert.Equal(t, "https://passes.example.org", cfg.Storage.Downloads.BaseURL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"notifications": {"fade": "later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
