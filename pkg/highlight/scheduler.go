package highlight

import "time"

// Timer is a handle to a scheduled one-shot callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Scheduler schedules one-shot deferred callbacks. Hosts with their own
// event loop should supply an implementation that delivers the callback on
// that loop; the default wraps time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// NewScheduler returns the default time.AfterFunc-backed scheduler.
func NewScheduler() Scheduler {
	return timeScheduler{}
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
