// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CachedAsset is a downloaded resource kept for offline use.
type CachedAsset struct {
	URL         string
	Filename    string
	ContentType string
	Content     []byte
	FetchedAt   time.Time
}
