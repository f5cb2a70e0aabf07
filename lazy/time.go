package lazy

import (
	"iter"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan re-exports the wall-clock interval type used by TakeDuring.
type TimeSpan = timespan.TimeSpan

// now is swapped by tests.
var now = time.Now

// TakeUntilTimeout yields pairs until the wall clock reaches deadline. The
// clock is checked once before the first element and once after each yielded
// pair, so a deadline already in the past yields nothing, and upstream work
// for the pair after the deadline never runs.
func (s Seq[K, V]) TakeUntilTimeout(deadline time.Time) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			if !now().Before(deadline) {
				return
			}
			for k, v := range s.iterate() {
				if !yield(k, v) {
					return
				}
				if !now().Before(deadline) {
					return
				}
			}
		}
	})
}

// TakeDuring yields pairs only while the wall clock lies inside span,
// checked with the same cadence as TakeUntilTimeout. A span that has not
// started or has already ended yields nothing.
func (s Seq[K, V]) TakeDuring(span TimeSpan) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			if !span.Contains(now()) {
				return
			}
			for k, v := range s.iterate() {
				if !yield(k, v) {
					return
				}
				if !span.Contains(now()) {
					return
				}
			}
		}
	})
}
