package notify

import "time"

type realScheduler struct{}

// NewRealScheduler returns a Scheduler backed by time.AfterFunc.
func NewRealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
