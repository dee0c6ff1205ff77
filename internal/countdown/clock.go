package countdown

import "time"

// Stopper is a scheduled callback that can be cancelled.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
	Now() time.Time
}

// SystemClock is backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Stopper { return time.AfterFunc(d, f) }

func (systemClock) Now() time.Time { return time.Now() }
