package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
)

func TestLoadTimer_FinishOnce(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(80 * time.Millisecond), base.Add(time.Second)}
	i := 0
	now := func() time.Time {
		tm := ticks[i]
		i++
		return tm
	}

	lt := NewLoadTimer(logger.Nop(), now)

	assert.Equal(t, 80*time.Millisecond, lt.Finish("index"))
	assert.Equal(t, 80*time.Millisecond, lt.Finish("index"))
	assert.Equal(t, 2, i)
}

func TestAlertBox(t *testing.T) {
	a := &AlertBox{}
	_, ok := a.Current()
	assert.False(t, ok)

	a.Alert("Please fill in all required fields.")
	msg, ok := a.Current()
	assert.True(t, ok)
	assert.Equal(t, "Please fill in all required fields.", msg)

	a.Acknowledge()
	_, ok = a.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, a.Raised())
}
