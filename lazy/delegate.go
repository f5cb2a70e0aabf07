package lazy

import (
	"iter"
	"math/rand/v2"

	"github.com/on-the-ground/lazyseq/eager"
)

// The operations below are not worth doing lazily. Each one defers until
// consumed, then drains the pipeline into the eager collection, runs the
// named algorithm there, and wraps the materialized result back into the
// stream.

func delegate[K comparable, V any](
	s Seq[K, V],
	algo func(*eager.Collection[K, V]) *eager.Collection[K, V],
) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return algo(s.Collect()).Seq()
	})
}

// Sorted stable-sorts by the given keys in priority order.
func (s Seq[K, V]) Sorted(keys ...eager.SortKey) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.SortBy(keys...)
	})
}

// SortedValues stable-sorts by the provided value comparison.
func (s Seq[K, V]) SortedValues(cmp func(a, b V) int) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.SortValues(cmp)
	})
}

// Shuffled randomly reorders the sequence. A nil rng uses the shared global
// source.
func (s Seq[K, V]) Shuffled(rng *rand.Rand) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.Shuffle(rng)
	})
}

// Sample draws n pairs without replacement.
func (s Seq[K, V]) Sample(n int, rng *rand.Rand) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.Random(n, rng)
	})
}

// Unique keeps the first occurrence of each distinct value.
func (s Seq[K, V]) Unique() Seq[K, V] {
	return delegate(s, (*eager.Collection[K, V]).Unique)
}

// Duplicates keeps the second and later occurrences of each distinct value.
func (s Seq[K, V]) Duplicates() Seq[K, V] {
	return delegate(s, (*eager.Collection[K, V]).Duplicates)
}

// Diff keeps the pairs whose values do not occur in other. Both sides are
// materialized on consumption.
func (s Seq[K, V]) Diff(other Seq[K, V]) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.Diff(other.Collect())
	})
}

// DiffKeys keeps the pairs whose keys do not occur in other.
func (s Seq[K, V]) DiffKeys(other Seq[K, V]) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.DiffKeys(other.Collect())
	})
}

// Intersect keeps the pairs whose values also occur in other.
func (s Seq[K, V]) Intersect(other Seq[K, V]) Seq[K, V] {
	return delegate(s, func(c *eager.Collection[K, V]) *eager.Collection[K, V] {
		return c.Intersect(other.Collect())
	})
}

// Dot flattens nested map and slice values into dotted keys.
func (s Seq[K, V]) Dot() Seq[string, any] {
	return New(func() iter.Seq2[string, any] {
		return s.Collect().Dot().Seq()
	})
}
