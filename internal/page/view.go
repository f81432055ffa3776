package page

import "github.com/MKhiriev/go-bus-pass/models"

// View is a render snapshot of a controller's transient state.
type View struct {
	Notifications []models.Notification
	// Notices are the short clipboard confirmations.
	Notices []string
	// Alert is the blocking alert awaiting acknowledgement, "" when none.
	Alert string
	// Strength maps form ids to their password-strength label.
	Strength map[string]string
	MenuOpen bool
	Anchor   string
}
