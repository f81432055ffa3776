package page

import "sync"

// AlertBox holds the blocking alert raised by a page. The front-end shows
// it until the user acknowledges it.
type AlertBox struct {
	mu      sync.Mutex
	message string
	raised  int
}

// Alert implements validators.Alerter.
func (a *AlertBox) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = message
	a.raised++
}

// Current returns the alert awaiting acknowledgement.
func (a *AlertBox) Current() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message, a.message != ""
}

// Acknowledge closes the current alert.
func (a *AlertBox) Acknowledge() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = ""
}

// Raised returns how many alerts were raised in total.
func (a *AlertBox) Raised() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.raised
}
