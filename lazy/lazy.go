package lazy

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/on-the-ground/lazyseq/eager"
)

// Pair is one (key, value) element of a sequence.
type Pair[K comparable, V any] = eager.Pair[K, V]

// source is the producer abstraction behind a Seq: iterate starts a fresh,
// independently consumable traversal. Three variants exist: an in-memory
// pair slice, a zero-argument producer function, and the memoizing cache
// adapter.
type source[K comparable, V any] interface {
	iterate() iter.Seq2[K, V]
}

type pairsSource[K comparable, V any] struct {
	pairs []Pair[K, V]
}

func (s pairsSource[K, V]) iterate() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range s.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (s pairsSource[K, V]) length() int { return len(s.pairs) }

type funcSource[K comparable, V any] struct {
	producer func() iter.Seq2[K, V]
}

func (s funcSource[K, V]) iterate() iter.Seq2[K, V] { return s.producer() }

// Seq is a lazy sequence: an immutable value wrapping a replayable source.
// Combinators return new Seq values without reading any element; work only
// happens when a terminal operation pulls. Traversing the same Seq twice
// restarts its producer from scratch unless the Seq was built by Remember.
type Seq[K comparable, V any] struct {
	src source[K, V]
}

// New wraps a zero-argument producer. The producer must return a fresh
// traversal on every call; it is invoked once per traversal of the Seq.
func New[K comparable, V any](producer func() iter.Seq2[K, V]) Seq[K, V] {
	if producer == nil {
		return Empty[K, V]()
	}
	return Seq[K, V]{src: funcSource[K, V]{producer: producer}}
}

// Empty returns a sequence with no elements.
func Empty[K comparable, V any]() Seq[K, V] {
	return Seq[K, V]{src: pairsSource[K, V]{}}
}

// FromPairs wraps an in-memory snapshot. The input slice is copied.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) Seq[K, V] {
	cp := make([]Pair[K, V], len(pairs))
	copy(cp, pairs)
	return Seq[K, V]{src: pairsSource[K, V]{pairs: cp}}
}

// FromValues wraps plain values under dense 0-based keys.
func FromValues[V any](values ...V) Seq[int, V] {
	pairs := make([]Pair[int, V], len(values))
	for i, v := range values {
		pairs[i] = Pair[int, V]{Key: i, Value: v}
	}
	return Seq[int, V]{src: pairsSource[int, V]{pairs: pairs}}
}

// FromMap snapshots m in ascending key order.
func FromMap[K cmp.Ordered, V any](m map[K]V) Seq[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	pairs := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[K, V]{Key: k, Value: m[k]}
	}
	return Seq[K, V]{src: pairsSource[K, V]{pairs: pairs}}
}

// FromCollection wraps an eager collection snapshot.
func FromCollection[K comparable, V any](c *eager.Collection[K, V]) Seq[K, V] {
	return Seq[K, V]{src: pairsSource[K, V]{pairs: c.Pairs()}}
}

// Range counts from `from` to `to` inclusive, in either direction.
func Range(from, to int) Seq[int, int] {
	return New(func() iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			step := 1
			if to < from {
				step = -1
			}
			i := 0
			for n := from; ; n += step {
				if !yield(i, n) {
					return
				}
				i++
				if n == to {
					return
				}
			}
		}
	})
}

// RangeFrom counts upward from start without end. Consume it through an
// early-terminating combinator such as Take or TakeWhile.
func RangeFrom(start int) Seq[int, int] {
	return New(func() iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			for i, n := 0, start; ; i, n = i+1, n+1 {
				if !yield(i, n) {
					return
				}
			}
		}
	})
}

// Times yields fn(1) through fn(n) under dense 0-based keys.
func Times[V any](n int, fn func(i int) V) Seq[int, V] {
	return New(func() iter.Seq2[int, V] {
		return func(yield func(int, V) bool) {
			for i := 1; i <= n; i++ {
				if !yield(i-1, fn(i)) {
					return
				}
			}
		}
	})
}

// FromChannel rejects a channel as a sequence source: a channel is an
// already-started, single-use traversal and cannot be replayed. Wrap channel
// construction in a producer passed to New, so each traversal gets a fresh
// channel, or drain the channel once and use FromValues.
func FromChannel[V any](_ <-chan V) (Seq[int, V], error) {
	return Seq[int, V]{}, fmt.Errorf("channel source: %w", ErrSingleUseSource)
}

// FromPull rejects a pull cursor as a sequence source for the same reason as
// FromChannel: once drained it cannot back a second traversal.
func FromPull[K comparable, V any](_ func() (K, V, bool)) (Seq[K, V], error) {
	return Seq[K, V]{}, fmt.Errorf("pull cursor source: %w", ErrSingleUseSource)
}

// iterate starts a fresh traversal of the sequence.
func (s Seq[K, V]) iterate() iter.Seq2[K, V] {
	if s.src == nil {
		return func(func(K, V) bool) {}
	}
	return s.src.iterate()
}

// All yields the sequence's pairs for use in a range statement. Each call
// starts a fresh traversal; breaking out of the range stops the upstream
// producers immediately.
func (s Seq[K, V]) All() iter.Seq2[K, V] {
	return s.iterate()
}
