package notify

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Scheduler defers callbacks. The center never assumes a callback is
// cancelled by Timer.Stop: a late callback must find nothing to do.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending deferred callback.
type Timer interface {
	Stop() bool
}
