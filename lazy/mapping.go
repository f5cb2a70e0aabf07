package lazy

import (
	"iter"

	"go.uber.org/zap"

	"github.com/on-the-ground/lazyseq/eager"
	"github.com/on-the-ground/lazyseq/shared/keypath"
)

// Map transforms each value with fn, preserving keys. It is a package
// function because Go methods cannot introduce the result type parameter.
func Map[K comparable, V, R any](s Seq[K, V], fn func(v V, k K) R) Seq[K, R] {
	return New(func() iter.Seq2[K, R] {
		return func(yield func(K, R) bool) {
			for k, v := range s.iterate() {
				if !yield(k, fn(v, k)) {
					return
				}
			}
		}
	})
}

// MapWithKeys maps each input pair to zero or more output pairs and flattens
// them into the result stream in order.
func MapWithKeys[K comparable, V any, K2 comparable, V2 any](
	s Seq[K, V],
	fn func(v V, k K) []Pair[K2, V2],
) Seq[K2, V2] {
	return New(func() iter.Seq2[K2, V2] {
		return func(yield func(K2, V2) bool) {
			for k, v := range s.iterate() {
				for _, p := range fn(v, k) {
					if !yield(p.Key, p.Value) {
						return
					}
				}
			}
		}
	})
}

// FlatMap maps each value to a sub-sequence and splices the sub-sequences
// together under dense 0-based keys.
func FlatMap[K comparable, V, R any](s Seq[K, V], fn func(v V, k K) iter.Seq[R]) Seq[int, R] {
	return New(func() iter.Seq2[int, R] {
		return func(yield func(int, R) bool) {
			i := 0
			for k, v := range s.iterate() {
				for r := range fn(v, k) {
					if !yield(i, r) {
						return
					}
					i++
				}
			}
		}
	})
}

// KeyBy rekeys each pair by fn. Duplicate keys survive in the stream itself;
// keyed consumers (Collect().Get, grouping) apply last-write-wins.
func KeyBy[K comparable, V any, K2 comparable](s Seq[K, V], fn func(v V, k K) K2) Seq[K2, V] {
	return New(func() iter.Seq2[K2, V] {
		return func(yield func(K2, V) bool) {
			for k, v := range s.iterate() {
				if !yield(fn(v, k), v) {
					return
				}
			}
		}
	})
}

// KeyByPath rekeys each pair by the value found at path inside the element.
// An unresolvable path keys the pair under nil.
func KeyByPath[K comparable, V any](s Seq[K, V], path string) Seq[any, V] {
	return KeyBy(s, func(v V, _ K) any {
		key, _ := keypath.Resolve(v, path)
		return key
	})
}

// GroupBy buckets pairs by fn into eager groups. Groups appear in first-seen
// order and preserve intra-group source order. Grouping requires draining
// the upstream, which happens on first consumption of the result.
func GroupBy[K comparable, V any, K2 comparable](
	s Seq[K, V],
	fn func(v V, k K) K2,
) Seq[K2, *eager.Collection[K, V]] {
	return New(func() iter.Seq2[K2, *eager.Collection[K, V]] {
		return func(yield func(K2, *eager.Collection[K, V]) bool) {
			var order []K2
			groups := make(map[K2][]Pair[K, V])
			for k, v := range s.iterate() {
				gk := fn(v, k)
				if _, ok := groups[gk]; !ok {
					order = append(order, gk)
				}
				groups[gk] = append(groups[gk], Pair[K, V]{Key: k, Value: v})
			}
			for _, gk := range order {
				if !yield(gk, eager.Materialize(groups[gk])) {
					return
				}
			}
		}
	})
}

// Pluck extracts the value at path from each element, under dense 0-based
// keys. Unresolvable paths pluck nil.
func Pluck[K comparable, V any](s Seq[K, V], path string) Seq[int, any] {
	return New(func() iter.Seq2[int, any] {
		return func(yield func(int, any) bool) {
			i := 0
			for _, v := range s.iterate() {
				plucked, _ := keypath.Resolve(v, path)
				if !yield(i, plucked) {
					return
				}
				i++
			}
		}
	})
}

// Combine pairs the receiver sequence's values, as keys, against the values
// sequence's values, advancing both in lock-step. When one side runs out
// before the other a diagnostic is logged and pairing stops at the shorter
// length; this is not an error.
func Combine[K comparable, V comparable, K2 comparable, W any](
	keys Seq[K, V],
	values Seq[K2, W],
) Seq[V, W] {
	return New(func() iter.Seq2[V, W] {
		return func(yield func(V, W) bool) {
			nextKey, stopKeys := iter.Pull2(keys.iterate())
			defer stopKeys()
			nextVal, stopVals := iter.Pull2(values.iterate())
			defer stopVals()

			paired := 0
			for {
				_, k, okKey := nextKey()
				_, v, okVal := nextVal()
				if !okKey || !okVal {
					if okKey != okVal {
						logger.Warn("combine sources have different lengths",
							zap.Int("paired", paired),
							zap.Bool("keys_exhausted", !okKey),
							zap.Bool("values_exhausted", !okVal),
						)
					}
					return
				}
				if !yield(k, v) {
					return
				}
				paired++
			}
		}
	})
}
