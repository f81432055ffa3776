// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify implements the notification center: a lazily created
// container of timed, dismissible notification entries.
//
// The center owns the list of entries; front-ends read it through Entries
// and re-render when a change listener fires. Every removal path (timer,
// explicit dismissal, fade completion) is idempotent, so a timer that fires
// after its entry was dismissed is a no-op.
package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/internal/utils"
	"github.com/MKhiriev/go-bus-pass/models"
)

// Default lifecycle durations.
const (
	DefaultAutoDismiss = 5 * time.Second
	FlashAutoDismiss   = 5 * time.Second
	FadeDuration       = 300 * time.Millisecond
)

// Timings configures the lifecycle durations of a Center.
type Timings struct {
	// AutoDismiss applies to entries created with Show.
	AutoDismiss time.Duration
	// Flash is the delay before an adopted entry starts fading.
	Flash time.Duration
	// Fade is how long an adopted entry stays in the fading state.
	Fade time.Duration
}

// DefaultTimings returns the standard 5 s / 5 s / 300 ms lifecycle.
func DefaultTimings() Timings {
	return Timings{
		AutoDismiss: DefaultAutoDismiss,
		Flash:       FlashAutoDismiss,
		Fade:        FadeDuration,
	}
}

// Validate reports whether all durations are usable.
func (t Timings) Validate() error {
	if t.AutoDismiss < 0 || t.Flash < 0 || t.Fade < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidTimings, t)
	}
	return nil
}

type entry struct {
	n     models.Notification
	timer Timer
}

type listener struct {
	id int
	fn func()
}

// Center owns the notification container and its entries.
type Center struct {
	mu        sync.Mutex
	container bool
	entries   []*entry
	listeners []listener
	nextLsn   int

	scheduler Scheduler
	ids       utils.IDGenerator
	now       func() time.Time
	timings   Timings
	log       *logger.Logger
}

// Option customizes a Center.
type Option func(*Center)

// WithScheduler replaces the time.AfterFunc based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Center) { c.scheduler = s }
}

// WithIDGenerator replaces the UUID handle generator.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(c *Center) { c.ids = g }
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithTimings overrides the lifecycle durations. Invalid timings are ignored.
func WithTimings(t Timings) Option {
	return func(c *Center) {
		if t.Validate() == nil {
			c.timings = t
		}
	}
}

// NewCenter creates an empty center. The container itself is created on the
// first Show or AdoptExisting call.
func NewCenter(log *logger.Logger, opts ...Option) *Center {
	c := &Center{
		scheduler: NewRealScheduler(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		timings:   DefaultTimings(),
		log:       log.ForComponent("notify"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers a listener called after every change of the entry list
// and returns the func that removes it. Listeners run outside the center's
// lock and may call back into it.
func (c *Center) OnChange(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextLsn
	c.nextLsn++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener) bool { return l.id == id })
		c.mu.Unlock()
	}
}

// Show appends a notification that removes itself after the default delay.
func (c *Center) Show(message string, kind models.NotificationKind) models.Notification {
	return c.ShowFor(message, kind, c.timings.AutoDismiss)
}

// ShowFor appends a notification that removes itself after d. A zero (or
// negative) d makes the entry persistent.
func (c *Center) ShowFor(message string, kind models.NotificationKind, d time.Duration) models.Notification {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	c.ensureContainer()
	e := &entry{n: models.Notification{
		ID:          models.NotificationID(c.ids.Generate()),
		Message:     message,
		Kind:        kind,
		CreatedAt:   c.now(),
		AutoDismiss: d,
	}}
	c.entries = append(c.entries, e)
	if d > 0 {
		id := e.n.ID
		e.timer = c.scheduler.AfterFunc(d, func() { c.Dismiss(id) })
	}
	n := e.n
	c.mu.Unlock()

	c.log.Debug().Str("func", "Center.ShowFor").
		Str("id", string(n.ID)).
		Str("kind", string(n.Kind)).
		Dur("auto_dismiss", d).
		Msg("notification shown")
	c.changed()

	return n
}

// AdoptExisting takes over messages that were already on the page when it
// loaded. They are not re-created: each one keeps its kind, gets the fixed
// flash timer, then fades for the fade duration and is removed. A flash
// without a kind is adopted as info.
func (c *Center) AdoptExisting(flashes ...models.Flash) []models.Notification {
	if len(flashes) == 0 {
		return nil
	}

	adopted := make([]models.Notification, 0, len(flashes))

	c.mu.Lock()
	c.container = true
	for _, flash := range flashes {
		kind := flash.Kind
		if kind == "" {
			kind = models.NotificationInfo
		}
		e := &entry{n: models.Notification{
			ID:          models.NotificationID(c.ids.Generate()),
			Message:     flash.Message,
			Kind:        kind,
			CreatedAt:   c.now(),
			AutoDismiss: c.timings.Flash,
			Adopted:     true,
		}}
		id := e.n.ID
		e.timer = c.scheduler.AfterFunc(c.timings.Flash, func() { c.startFade(id) })
		c.entries = append(c.entries, e)
		adopted = append(adopted, e.n)
	}
	c.mu.Unlock()

	c.log.Debug().Str("func", "Center.AdoptExisting").Int("count", len(adopted)).Msg("flash messages adopted")
	c.changed()

	return adopted
}

func (c *Center) startFade(id models.NotificationID) {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	e := c.entries[idx]
	e.n.Fading = true
	e.timer = c.scheduler.AfterFunc(c.timings.Fade, func() { c.Dismiss(id) })
	c.mu.Unlock()

	c.changed()
}

// Dismiss removes the entry immediately and cancels its pending timer.
// It returns false when the entry is already gone.
func (c *Center) Dismiss(id models.NotificationID) bool {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	e := c.entries[idx]
	c.entries = slices.Delete(c.entries, idx, idx+1)
	if e.timer != nil {
		e.timer.Stop()
	}
	c.mu.Unlock()

	c.log.Debug().Str("func", "Center.Dismiss").Str("id", string(id)).Msg("notification removed")
	c.changed()

	return true
}

// DismissAll removes every entry. Used when a page is unloaded.
func (c *Center) DismissAll() {
	for _, n := range c.Entries() {
		c.Dismiss(n.ID)
	}
}

// Entries returns a snapshot of the visible entries, oldest first.
func (c *Center) Entries() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Notification, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.n
	}
	return out
}

// Len returns the number of visible entries.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// HasContainer reports whether the container has been created.
func (c *Center) HasContainer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.container
}

func (c *Center) ensureContainer() {
	if !c.container {
		c.container = true
		c.log.Debug().Str("func", "Center.ensureContainer").Msg("notification container created")
	}
}

func (c *Center) indexOf(id models.NotificationID) int {
	return slices.IndexFunc(c.entries, func(e *entry) bool { return e.n.ID == id })
}

func (c *Center) changed() {
	c.mu.Lock()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
}
