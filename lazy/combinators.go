package lazy

import (
	"iter"
	"reflect"

	"github.com/on-the-ground/lazyseq/shared/cmpop"
)

// Filter keeps the pairs for which pred returns true, in source order. The
// predicate runs exactly once per source element, and only as the result is
// consumed. A nil predicate keeps the values that are not their type's zero
// value.
func (s Seq[K, V]) Filter(pred func(v V, k K) bool) Seq[K, V] {
	if pred == nil {
		pred = func(v V, _ K) bool { return truthy(v) }
	}
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			for k, v := range s.iterate() {
				if !pred(v, k) {
					continue
				}
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// Reject is Filter with the predicate negated.
func (s Seq[K, V]) Reject(pred func(v V, k K) bool) Seq[K, V] {
	if pred == nil {
		pred = func(v V, _ K) bool { return truthy(v) }
	}
	return s.Filter(func(v V, k K) bool { return !pred(v, k) })
}

// MapValues transforms each value in place, preserving keys. Cross-type
// transformation is the package-level Map.
func (s Seq[K, V]) MapValues(fn func(v V, k K) V) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			for k, v := range s.iterate() {
				if !yield(k, fn(v, k)) {
					return
				}
			}
		}
	})
}

// Tap invokes fn on each pair as it flows past, without altering the stream.
func (s Seq[K, V]) Tap(fn func(v V, k K)) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			for k, v := range s.iterate() {
				fn(v, k)
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// Take yields at most the first n pairs for n >= 0, never advancing the
// upstream past position n-1. For n < 0 it yields the last |n| pairs, which
// requires draining the upstream before the first yield.
func (s Seq[K, V]) Take(n int) Seq[K, V] {
	if n < 0 {
		return s.takeLast(-n)
	}
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			if n == 0 {
				return
			}
			taken := 0
			for k, v := range s.iterate() {
				if !yield(k, v) {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		}
	})
}

// Skip discards the first n pairs, then yields the remainder unchanged.
func (s Seq[K, V]) Skip(n int) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			skipped := 0
			for k, v := range s.iterate() {
				if skipped < n {
					skipped++
					continue
				}
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// SkipWhile discards the prefix for which pred holds, then yields everything
// else, starting with the first pair that failed the predicate.
func (s Seq[K, V]) SkipWhile(pred func(v V, k K) bool) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			skipping := true
			for k, v := range s.iterate() {
				if skipping {
					if pred(v, k) {
						continue
					}
					skipping = false
				}
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// SkipUntil discards the prefix for which pred does not hold.
func (s Seq[K, V]) SkipUntil(pred func(v V, k K) bool) Seq[K, V] {
	return s.SkipWhile(func(v V, k K) bool { return !pred(v, k) })
}

// SkipUntilValue discards the prefix of pairs whose value does not loosely
// equal target; the matching pair itself is kept.
func (s Seq[K, V]) SkipUntilValue(target any) Seq[K, V] {
	return s.SkipUntil(func(v V, _ K) bool {
		return cmpop.Compare(v, cmpop.OpEq, target)
	})
}

// TakeWhile yields pairs while pred holds and stops the stream at the first
// pair that fails it, exclusive of that pair.
func (s Seq[K, V]) TakeWhile(pred func(v V, k K) bool) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			for k, v := range s.iterate() {
				if !pred(v, k) {
					return
				}
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// TakeUntil yields pairs until pred first holds, exclusive of that pair.
func (s Seq[K, V]) TakeUntil(pred func(v V, k K) bool) Seq[K, V] {
	return s.TakeWhile(func(v V, k K) bool { return !pred(v, k) })
}

// TakeUntilValue yields pairs until one loosely equals target.
func (s Seq[K, V]) TakeUntilValue(target any) Seq[K, V] {
	return s.TakeUntil(func(v V, _ K) bool {
		return cmpop.Compare(v, cmpop.OpEq, target)
	})
}

func truthy(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && !rv.IsZero()
}
