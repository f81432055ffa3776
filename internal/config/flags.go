package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-locale collation locale (e.g. "en")
//	-sort-polarity "documented" or "marker"
//	-log-file client log file path
//	-notify-timeout lifetime of runtime notifications (e.g. "5s")
//	-flash-timeout lifetime of flash messages (e.g. "5s")
//	-fade flash fade duration (e.g. "300ms")
//	-clipboard-notice lifetime of the "copied" notice (e.g. "2s")
//	-probe-url connectivity probe URL
//	-probe-interval delay between probes (e.g. "10s")
//	-probe-timeout single probe timeout (e.g. "3s")
//	-cache-dsn offline asset cache SQLite DSN
//	-downloads-dir directory downloads are written to
//	-downloads-base-url base URL of relative download links
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("bus-pass", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UI.Locale, "locale", "", "Collation locale")
	fs.StringVar(&cfg.UI.SortPolarity, "sort-polarity", "", "Sort toggle polarity (documented|marker)")
	fs.StringVar(&cfg.UI.LogFile, "log-file", "", "Client log file path")
	fs.DurationVar(&cfg.Notifications.AutoDismiss, "notify-timeout", 0, "Notification lifetime (e.g., 5s)")
	fs.DurationVar(&cfg.Notifications.Flash, "flash-timeout", 0, "Flash message lifetime (e.g., 5s)")
	fs.DurationVar(&cfg.Notifications.Fade, "fade", 0, "Flash fade duration (e.g., 300ms)")
	fs.DurationVar(&cfg.Notifications.ClipboardNotice, "clipboard-notice", 0, "Clipboard notice lifetime (e.g., 2s)")
	fs.StringVar(&cfg.Connectivity.ProbeURL, "probe-url", "", "Connectivity probe URL")
	fs.DurationVar(&cfg.Connectivity.ProbeInterval, "probe-interval", 0, "Delay between probes (e.g., 10s)")
	fs.DurationVar(&cfg.Connectivity.ProbeTimeout, "probe-timeout", 0, "Probe timeout (e.g., 3s)")
	fs.StringVar(&cfg.Storage.Cache.DSN, "cache-dsn", "", "Offline asset cache DSN")
	fs.StringVar(&cfg.Storage.Downloads.Dir, "downloads-dir", "", "Downloads directory")
	fs.StringVar(&cfg.Storage.Downloads.BaseURL, "downloads-base-url", "", "Base URL of relative download links")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
