package mock

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/notify"
)

// ManualScheduler is a notify.Scheduler whose callbacks fire only when the
// test advances its virtual clock. The zero value is ready to use.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	f       func()
	fired   bool
	stopped bool
}

// AfterFunc implements notify.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) notify.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward, firing due callbacks in deadline order.
// Callbacks run without the scheduler lock and may schedule new timers.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *manualTimer
		for _, t := range s.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.at
		s.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
