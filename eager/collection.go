// Package eager provides the array-backed materialized collection that the
// lazy engine flushes into, plus the handful of algorithms that are not worth
// doing lazily: stable multi-key sort, random sampling, set differences,
// dot-notation flattening, duplicate detection, and sole-element extraction.
//
// A Collection always holds a fully materialized snapshot and never reaches
// back into the pipeline that produced it.
package eager

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrNoElements is returned when an operation expects at least one
	// matching element and finds none.
	ErrNoElements = errors.New("no elements found")

	// ErrMultipleElements is returned when an operation expects exactly one
	// matching element and finds more.
	ErrMultipleElements = errors.New("multiple elements found")
)

// CardinalityError wraps ErrNoElements or ErrMultipleElements together with
// the observed element count.
type CardinalityError struct {
	Count int
	Err   error
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%v: %d", e.Err, e.Count)
}

func (e *CardinalityError) Unwrap() error { return e.Err }

// Pair is one (key, value) element of a sequence. Keys may repeat; only
// operations that document last-write-wins keying treat them as unique.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Collection is an ordered, immutable-by-convention snapshot of pairs. All
// transforming methods return a new Collection and leave the receiver
// untouched.
type Collection[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// Materialize snapshots pairs into a Collection. The input slice is copied.
func Materialize[K comparable, V any](pairs []Pair[K, V]) *Collection[K, V] {
	cp := make([]Pair[K, V], len(pairs))
	copy(cp, pairs)
	return &Collection[K, V]{pairs: cp}
}

// Of builds a Collection from plain values with dense 0-based keys.
func Of[V any](values ...V) *Collection[int, V] {
	pairs := make([]Pair[int, V], len(values))
	for i, v := range values {
		pairs[i] = Pair[int, V]{Key: i, Value: v}
	}
	return &Collection[int, V]{pairs: pairs}
}

func (c *Collection[K, V]) Len() int { return len(c.pairs) }

// Pairs returns a copy of the underlying pairs in order.
func (c *Collection[K, V]) Pairs() []Pair[K, V] {
	cp := make([]Pair[K, V], len(c.pairs))
	copy(cp, c.pairs)
	return cp
}

func (c *Collection[K, V]) Values() []V {
	vs := make([]V, len(c.pairs))
	for i, p := range c.pairs {
		vs[i] = p.Value
	}
	return vs
}

func (c *Collection[K, V]) Keys() []K {
	ks := make([]K, len(c.pairs))
	for i, p := range c.pairs {
		ks[i] = p.Key
	}
	return ks
}

// Get returns the value stored under key. With duplicate keys the last
// occurrence wins.
func (c *Collection[K, V]) Get(key K) (V, bool) {
	for i := len(c.pairs) - 1; i >= 0; i-- {
		if c.pairs[i].Key == key {
			return c.pairs[i].Value, true
		}
	}
	var zero V
	return zero, false
}

// Seq yields the collection's pairs in order. Each call starts a fresh
// traversal.
func (c *Collection[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range c.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Sole returns the collection's only element. It fails with ErrNoElements on
// an empty collection and with a CardinalityError wrapping
// ErrMultipleElements otherwise.
func (c *Collection[K, V]) Sole() (V, error) {
	switch len(c.pairs) {
	case 0:
		var zero V
		return zero, ErrNoElements
	case 1:
		return c.pairs[0].Value, nil
	default:
		var zero V
		return zero, &CardinalityError{Count: len(c.pairs), Err: ErrMultipleElements}
	}
}
