package config

import (
	"fmt"
	"time"
)

// Defaults applied to zero-valued settings.
const (
	DefaultLocale          = "en"
	DefaultSortPolarity    = SortPolarityDocumented
	DefaultAutoDismiss     = 5 * time.Second
	DefaultFlash           = 5 * time.Second
	DefaultFade            = 300 * time.Millisecond
	DefaultClipboardNotice = 2 * time.Second
	DefaultProbeInterval   = 10 * time.Second
	DefaultProbeTimeout    = 3 * time.Second
	DefaultCacheDSN        = "bus-pass-cache.db"
	DefaultDownloadsDir    = "."
)

// Accepted SortPolarity values.
const (
	SortPolarityDocumented = "documented"
	SortPolarityMarker     = "marker"
)

// ClientUI holds presentation settings.
type ClientUI struct {
	Locale       string
	SortPolarity string
	LogFile      string
}

// ClientNotifications holds notification lifecycle durations.
type ClientNotifications struct {
	AutoDismiss     time.Duration
	Flash           time.Duration
	Fade            time.Duration
	ClipboardNotice time.Duration
}

// ClientConnectivity holds probe settings. An empty ProbeURL disables
// connectivity detection.
type ClientConnectivity struct {
	ProbeURL      string
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// ClientCache holds the asset cache database settings.
type ClientCache struct {
	DSN string
}

// ClientDownloads holds download settings.
type ClientDownloads struct {
	Dir     string
	BaseURL string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	UI            ClientUI
	Notifications ClientNotifications
	Connectivity  ClientConnectivity
	Cache         ClientCache
	Downloads     ClientDownloads
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		UI: ClientUI{
			Locale:       orDefault(cfg.UI.Locale, DefaultLocale),
			SortPolarity: orDefault(cfg.UI.SortPolarity, DefaultSortPolarity),
			LogFile:      cfg.UI.LogFile,
		},
		Notifications: ClientNotifications{
			AutoDismiss:     orDefault(cfg.Notifications.AutoDismiss, DefaultAutoDismiss),
			Flash:           orDefault(cfg.Notifications.Flash, DefaultFlash),
			Fade:            orDefault(cfg.Notifications.Fade, DefaultFade),
			ClipboardNotice: orDefault(cfg.Notifications.ClipboardNotice, DefaultClipboardNotice),
		},
		Connectivity: ClientConnectivity{
			ProbeURL:      cfg.Connectivity.ProbeURL,
			ProbeInterval: orDefault(cfg.Connectivity.ProbeInterval, DefaultProbeInterval),
			ProbeTimeout:  orDefault(cfg.Connectivity.ProbeTimeout, DefaultProbeTimeout),
		},
		Cache: ClientCache{
			DSN: orDefault(cfg.Storage.Cache.DSN, DefaultCacheDSN),
		},
		Downloads: ClientDownloads{
			Dir:     orDefault(cfg.Storage.Downloads.Dir, DefaultDownloadsDir),
			BaseURL: cfg.Storage.Downloads.BaseURL,
		},
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
