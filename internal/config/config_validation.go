// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// validate checks the defaulted client configuration before it is used at
// startup.
func (cfg *ClientConfig) validate() error {
	if _, err := language.Parse(cfg.UI.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidUIConfigs, cfg.UI.Locale, err)
	}

	if cfg.UI.SortPolarity != SortPolarityDocumented && cfg.UI.SortPolarity != SortPolarityMarker {
		return fmt.Errorf("%w: sort polarity %q", ErrInvalidUIConfigs, cfg.UI.SortPolarity)
	}

	n := cfg.Notifications
	if n.AutoDismiss < 0 || n.Flash < 0 || n.Fade < 0 || n.ClipboardNotice < 0 {
		return ErrInvalidNotificationConfigs
	}

	if !isAbsoluteURL(cfg.Connectivity.ProbeURL, true) {
		return fmt.Errorf("%w: probe url %q", ErrInvalidConnectivityConfigs, cfg.Connectivity.ProbeURL)
	}
	if cfg.Connectivity.ProbeInterval < 0 || cfg.Connectivity.ProbeTimeout < 0 {
		return ErrInvalidConnectivityConfigs
	}

	if cfg.Cache.DSN == "" || cfg.Downloads.Dir == "" {
		return ErrInvalidStorageConfigs
	}
	if !isAbsoluteURL(cfg.Downloads.BaseURL, true) {
		return fmt.Errorf("%w: downloads base url %q", ErrInvalidStorageConfigs, cfg.Downloads.BaseURL)
	}

	return nil
}

func isAbsoluteURL(raw string, allowEmpty bool) bool {
	if raw == "" {
		return allowEmpty
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
