// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// Bus Pass System front-end.
//
// All Msg* constants are human-readable texts shown on the status line of a
// page after a command. Keeping them in one place ensures consistent wording
// across the screens.
package app

const (
	// MsgClipboardUnavailable is shown when a copy action runs on a system
	// without clipboard support.
	MsgClipboardUnavailable = "Clipboard is not available"

	// MsgDownloadsUnavailable is shown when the client was started without
	// a downloader.
	MsgDownloadsUnavailable = "Downloads are not available"

	// MsgDownloadInvalidName is shown when a download link carries a file
	// name that cannot be saved.
	MsgDownloadInvalidName = "Download failed: invalid file name"

	// MsgDownloadNoNetwork is shown when the image could not be fetched and
	// no cached copy exists because the network or server is unreachable.
	MsgDownloadNoNetwork = "Download failed: no network or server unavailable"

	// MsgDownloadFailed is shown for any other failed download.
	MsgDownloadFailed = "Download failed"

	// MsgDownloading prefixes the name of a file being downloaded.
	MsgDownloading = "Downloading "

	// MsgSavedTo prefixes the path a download was written to.
	MsgSavedTo = "Saved to "

	// MsgSubmitted is shown after a valid submission of a form without a
	// follow-up page.
	MsgSubmitted = "Submitted"
)
