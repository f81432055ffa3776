// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity turns network reachability transitions into user
// notifications and provides an HTTP based source of such transitions.
package connectivity

import (
	"sync"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

// Messages shown on transitions.
const (
	MessageOnline  = "Connection restored"
	MessageOffline = "No internet connection"
)

// Monitor reacts to connectivity transitions. It keeps no copy of the state:
// every transition produces exactly one notification.
type Monitor struct {
	notifier Notifier
	log      *logger.Logger

	once        sync.Once
	mu          sync.Mutex
	unsubscribe func()
}

// NewMonitor creates a monitor reporting through notifier.
func NewMonitor(notifier Notifier, log *logger.Logger) *Monitor {
	return &Monitor{
		notifier: notifier,
		log:      log.ForComponent("connectivity"),
	}
}

// Subscribe attaches the monitor to src. Only the first call subscribes;
// later calls are ignored. A nil source disables the monitor.
func (m *Monitor) Subscribe(src Source) {
	if src == nil {
		return
	}
	m.once.Do(func() {
		unsub := src.Subscribe(m.HandleTransition)

		m.mu.Lock()
		m.unsubscribe = unsub
		m.mu.Unlock()
	})
}

// Close removes the subscription. Safe to call more than once.
func (m *Monitor) Close() {
	m.mu.Lock()
	unsub := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// HandleTransition shows the notification for a transition to state.
func (m *Monitor) HandleTransition(state models.ConnectivityState) {
	m.log.Info().Str("func", "Monitor.HandleTransition").Stringer("state", state).Msg("connectivity changed")

	switch state {
	case models.Online:
		m.notifier.Show(MessageOnline, models.NotificationSuccess)
	case models.Offline:
		m.notifier.Show(MessageOffline, models.NotificationError)
	}
}
