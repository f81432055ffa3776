// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// UI holds presentation settings: collation locale, sort toggle
	// polarity and the log file location.
	UI UI `envPrefix:"UI_"`

	// Notifications holds the notification lifecycle durations.
	Notifications Notifications `envPrefix:"NOTIFY_"`

	// Connectivity holds the reachability probe settings.
	Connectivity Connectivity `envPrefix:"CONNECTIVITY_"`

	// Storage holds the offline asset cache and download locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// UI holds presentation settings.
type UI struct {
	// Locale is the BCP 47 tag used to collate table text (e.g. "en", "ru").
	// Env: UI_LOCALE
	Locale string `env:"LOCALE"`

	// SortPolarity selects how a header without a direction marker is read
	// by the sort toggle: "documented" (first activation descending) or
	// "marker" (first activation ascending).
	// Env: UI_SORT_POLARITY
	SortPolarity string `env:"SORT_POLARITY"`

	// LogFile is the file client logs are appended to.
	// Env: UI_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Notifications holds notification lifecycle durations.
type Notifications struct {
	// AutoDismiss is the lifetime of notifications created at runtime.
	// Env: NOTIFY_AUTO_DISMISS
	AutoDismiss time.Duration `env:"AUTO_DISMISS"`

	// Flash is the lifetime of flash messages present when a page loads.
	// Env: NOTIFY_FLASH
	Flash time.Duration `env:"FLASH"`

	// Fade is how long a flash message fades before it is removed.
	// Env: NOTIFY_FADE
	Fade time.Duration `env:"FADE"`

	// ClipboardNotice is how long the "copied" notice stays visible.
	// Env: NOTIFY_CLIPBOARD_NOTICE
	ClipboardNotice time.Duration `env:"CLIPBOARD_NOTICE"`
}

// Connectivity holds reachability probe settings.
type Connectivity struct {
	// ProbeURL is requested with HEAD to detect connectivity. Empty disables
	// connectivity detection.
	// Env: CONNECTIVITY_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// ProbeInterval is the delay between probes.
	// Env: CONNECTIVITY_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single probe.
	// Env: CONNECTIVITY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage groups local storage locations.
type Storage struct {
	// Cache holds the offline asset cache database settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Downloads holds the directory downloaded files are written to.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`
}

// Cache holds the offline asset cache database settings.
type Cache struct {
	// DSN is the SQLite data source name of the asset cache.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Downloads holds download settings.
type Downloads struct {
	// Dir is the directory QR images are saved to.
	// Env: STORAGE_DOWNLOADS_DIR
	Dir string `env:"DIR"`

	// BaseURL resolves relative QR image URLs (e.g. "/static/qr/1.png").
	// Env: STORAGE_DOWNLOADS_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
