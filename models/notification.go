// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationKind selects the icon and style of a notification.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Icon returns the glyph rendered in front of a notification message.
func (k NotificationKind) Icon() string {
	switch k {
	case NotificationSuccess:
		return "✔"
	case NotificationError:
		return "⚠"
	default:
		return "ℹ"
	}
}

// NotificationID is an opaque handle of a notification entry. A handle of a
// removed entry stays invalid forever.
type NotificationID string

// Notification is a timed, dismissible message shown to the user.
type Notification struct {
	ID        NotificationID
	Message   string
	Kind      NotificationKind
	CreatedAt time.Time

	// AutoDismiss is the delay before the entry removes itself.
	// Zero keeps the entry until it is dismissed explicitly.
	AutoDismiss time.Duration

	// Adopted marks entries that were already present on the page when it
	// loaded (server-rendered flash messages).
	Adopted bool

	// Fading is set while an adopted entry plays its fade-out before removal.
	Fading bool
}

// Persistent reports whether the entry never expires on its own.
func (n Notification) Persistent() bool {
	return n.AutoDismiss == 0
}

// Flash is a server-rendered message already present on a page when it loads,
// with the category the server rendered it in.
type Flash struct {
	Message string
	Kind    NotificationKind
}
