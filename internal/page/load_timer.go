package page

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
)

// LoadTimer measures how long a page took to load and logs it once.
type LoadTimer struct {
	start time.Time
	now   func() time.Time
	once  sync.Once
	took  time.Duration
	log   *logger.Logger
}

// NewLoadTimer starts measuring. A nil now means time.Now.
func NewLoadTimer(log *logger.Logger, now func() time.Time) *LoadTimer {
	if now == nil {
		now = time.Now
	}
	return &LoadTimer{start: now(), now: now, log: log}
}

// Finish records the load duration for page name. Only the first call
// measures and logs; later calls return the recorded duration.
func (t *LoadTimer) Finish(name string) time.Duration {
	t.once.Do(func() {
		t.took = t.now().Sub(t.start)
		t.log.Info().Str("func", "LoadTimer.Finish").
			Str("page", name).
			Int64("load_ms", t.took.Milliseconds()).
			Msg("page load time")
	})
	return t.took
}
