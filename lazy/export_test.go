package lazy

import "time"

// StubNow swaps the package clock for tests and returns a restore func.
func StubNow(fn func() time.Time) (restore func()) {
	prev := now
	now = fn
	return func() { now = prev }
}
