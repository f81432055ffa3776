package tui

import (
	"time"

	"github.com/MKhiriev/go-bus-pass/internal/page"
)

// NavigateTo asks the root model to leave the current page and load Page.
type NavigateTo struct {
	Page string
}

// tickMsg re-renders the screen so timer driven changes (expiring
// notifications, connectivity transitions) become visible.
type tickMsg time.Time

// commandDoneMsg carries the result of a command dispatched in the
// background. owner identifies the page load the command belongs to.
type commandDoneMsg struct {
	owner *page.Controller
	out   page.Outcome
	err   error
}
