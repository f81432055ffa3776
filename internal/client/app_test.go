package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-bus-pass/internal/config"
	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/sorting"
	"github.com/MKhiriev/go-bus-pass/models"
)

func testClientConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		UI: config.ClientUI{Locale: "de", SortPolarity: config.SortPolarityMarker},
		Notifications: config.ClientNotifications{
			AutoDismiss:     time.Second,
			Flash:           2 * time.Second,
			Fade:            100 * time.Millisecond,
			ClipboardNotice: time.Second,
		},
		Cache:     config.ClientCache{DSN: filepath.Join(t.TempDir(), "cache.db")},
		Downloads: config.ClientDownloads{Dir: t.TempDir()},
	}
}

func TestNewPageConfig(t *testing.T) {
	cfg := testClientConfig(t)

	got, err := newPageConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, language.German, got.Locale)
	assert.Equal(t, sorting.PolarityMarker, got.Polarity)
	assert.Equal(t, time.Second, got.Timings.AutoDismiss)
	assert.Equal(t, 2*time.Second, got.Timings.Flash)
	assert.Equal(t, 100*time.Millisecond, got.Timings.Fade)

	cfg.UI.SortPolarity = config.SortPolarityDocumented
	got, err = newPageConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, sorting.PolarityDocumented, got.Polarity)
}

func TestNewPageConfig_Errors(t *testing.T) {
	cfg := testClientConfig(t)
	cfg.UI.Locale = "not a locale!"
	_, err := newPageConfig(cfg)
	assert.Error(t, err)

	cfg = testClientConfig(t)
	cfg.Notifications.Fade = -time.Second
	_, err = newPageConfig(cfg)
	assert.Error(t, err)
}

func TestNewApp_WiresServices(t *testing.T) {
	cfg := testClientConfig(t)
	cfg.Connectivity = config.ClientConnectivity{ProbeURL: "http://127.0.0.1:1/health", ProbeInterval: time.Hour}

	a, err := NewApp(context.Background(), cfg, models.NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.shutdown)

	assert.NotNil(t, a.cache)
	assert.NotNil(t, a.services.Source)
	assert.NotNil(t, a.services.Copier)
	assert.NotNil(t, a.services.Downloader)
	assert.Equal(t, 1, a.workers.Len())

	c, err := a.loadPage(context.Background(), &models.Page{Name: "index"})
	require.NoError(t, err)
	c.Close()
}

func TestNewApp_WithoutCacheOrProbe(t *testing.T) {
	cfg := testClientConfig(t)
	cfg.Cache.DSN = filepath.Join(t.TempDir(), "missing", "dir", "cache.db")

	a, err := NewApp(context.Background(), cfg, models.BuildInfo{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.shutdown)

	assert.Nil(t, a.services.Source)
	assert.Equal(t, 0, a.workers.Len())
}
