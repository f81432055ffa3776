// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package peripheral

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/notify"
)

// NoticeBoard holds short-lived notices that live outside the notification
// center, such as the clipboard confirmation. Each notice removes itself
// after its own duration.
type NoticeBoard struct {
	mu        sync.Mutex
	scheduler notify.Scheduler
	notices   []notice
	nextID    uint64
	listeners map[uint64]func()
}

type notice struct {
	id      uint64
	message string
}

// NewNoticeBoard returns an empty board. A nil scheduler means time.AfterFunc.
func NewNoticeBoard(s notify.Scheduler) *NoticeBoard {
	if s == nil {
		s = notify.NewRealScheduler()
	}
	return &NoticeBoard{scheduler: s, listeners: make(map[uint64]func())}
}

// OnChange registers a listener called after every change, outside the lock.
// The board outlives page loads, so callers must call the returned func when
// they go away.
func (b *NoticeBoard) OnChange(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Show displays message for d.
func (b *NoticeBoard) Show(message string, d time.Duration) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.notices = append(b.notices, notice{id: id, message: message})
	b.scheduler.AfterFunc(d, func() { b.remove(id) })
	b.mu.Unlock()

	b.changed()
}

// Notices returns the visible notices, oldest first.
func (b *NoticeBoard) Notices() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.notices))
	for i, n := range b.notices {
		out[i] = n.message
	}
	return out
}

func (b *NoticeBoard) remove(id uint64) {
	b.mu.Lock()
	idx := slices.IndexFunc(b.notices, func(n notice) bool { return n.id == id })
	if idx < 0 {
		b.mu.Unlock()
		return
	}
	b.notices = slices.Delete(b.notices, idx, idx+1)
	b.mu.Unlock()

	b.changed()
}

func (b *NoticeBoard) changed() {
	b.mu.Lock()
	listeners := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
