package connectivity

import "github.com/MKhiriev/go-bus-pass/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// Notifier shows a notification. It is satisfied by *notify.Center.
type Notifier interface {
	Show(message string, kind models.NotificationKind) models.Notification
}

// Source delivers connectivity transitions. Subscribe returns a function that
// removes the subscription.
type Source interface {
	Subscribe(fn func(models.ConnectivityState)) (unsubscribe func())
}
