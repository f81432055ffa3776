// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-bus-pass/internal/app"
	"github.com/MKhiriev/go-bus-pass/internal/page"
	"github.com/MKhiriev/go-bus-pass/internal/peripheral"
)

// humanizeCommandError turns a failed page command into a status line.
func humanizeCommandError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, page.ErrDownloadUnavailable):
		return app.MsgDownloadsUnavailable
	case errors.Is(err, peripheral.ErrInvalidFilename):
		return app.MsgDownloadInvalidName
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgDownloadNoNetwork
	}
	if errors.Is(err, peripheral.ErrDownloadFailed) {
		return app.MsgDownloadFailed
	}

	return err.Error()
}
