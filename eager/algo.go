package eager

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/on-the-ground/lazyseq/internal/identity"
)

// Shuffle returns a randomly reordered copy. A nil rng falls back to the
// shared global source.
func (c *Collection[K, V]) Shuffle(rng *rand.Rand) *Collection[K, V] {
	out := c.Pairs()
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return &Collection[K, V]{pairs: out}
}

// Random samples n pairs without replacement, preserving nothing of the
// original order. Asking for more pairs than exist returns them all.
func (c *Collection[K, V]) Random(n int, rng *rand.Rand) *Collection[K, V] {
	if n < 0 {
		n = 0
	}
	shuffled := c.Shuffle(rng)
	if n < len(shuffled.pairs) {
		shuffled.pairs = shuffled.pairs[:n]
	}
	return shuffled
}

// Unique keeps the first occurrence of each distinct value.
func (c *Collection[K, V]) Unique() *Collection[K, V] {
	seen := make(map[uint64]struct{}, len(c.pairs))
	out := make([]Pair[K, V], 0, len(c.pairs))
	for _, p := range c.pairs {
		k := identity.Key(p.Value)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return &Collection[K, V]{pairs: out}
}

// Duplicates keeps the second and later occurrences of each distinct value.
func (c *Collection[K, V]) Duplicates() *Collection[K, V] {
	seen := make(map[uint64]struct{}, len(c.pairs))
	var out []Pair[K, V]
	for _, p := range c.pairs {
		k := identity.Key(p.Value)
		if _, ok := seen[k]; ok {
			out = append(out, p)
			continue
		}
		seen[k] = struct{}{}
	}
	return &Collection[K, V]{pairs: out}
}

// Diff keeps the pairs whose values do not occur in other.
func (c *Collection[K, V]) Diff(other *Collection[K, V]) *Collection[K, V] {
	exclude := valueSet(other)
	var out []Pair[K, V]
	for _, p := range c.pairs {
		if _, ok := exclude[identity.Key(p.Value)]; !ok {
			out = append(out, p)
		}
	}
	return &Collection[K, V]{pairs: out}
}

// Intersect keeps the pairs whose values also occur in other.
func (c *Collection[K, V]) Intersect(other *Collection[K, V]) *Collection[K, V] {
	include := valueSet(other)
	var out []Pair[K, V]
	for _, p := range c.pairs {
		if _, ok := include[identity.Key(p.Value)]; ok {
			out = append(out, p)
		}
	}
	return &Collection[K, V]{pairs: out}
}

// DiffKeys keeps the pairs whose keys do not occur in other.
func (c *Collection[K, V]) DiffKeys(other *Collection[K, V]) *Collection[K, V] {
	exclude := make(map[K]struct{}, len(other.pairs))
	for _, p := range other.pairs {
		exclude[p.Key] = struct{}{}
	}
	var out []Pair[K, V]
	for _, p := range c.pairs {
		if _, ok := exclude[p.Key]; !ok {
			out = append(out, p)
		}
	}
	return &Collection[K, V]{pairs: out}
}

// Dot flattens nested map and slice values into a single level keyed by
// dotted paths, e.g. {a: {b: 1}} becomes {"a.b": 1}.
func (c *Collection[K, V]) Dot() *Collection[string, any] {
	var out []Pair[string, any]
	for _, p := range c.pairs {
		flatten(fmt.Sprint(p.Key), p.Value, &out)
	}
	return &Collection[string, any]{pairs: out}
}

func flatten(prefix string, v any, out *[]Pair[string, any]) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.Len() == 0 {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, mk := range rv.MapKeys() {
			keys = append(keys, mk.String())
		}
		// Deterministic output order for map-backed levels.
		slices.Sort(keys)
		for _, mk := range keys {
			mv := rv.MapIndex(reflect.ValueOf(mk).Convert(rv.Type().Key()))
			flatten(prefix+"."+mk, mv.Interface(), out)
		}
		return
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			break
		}
		for i := 0; i < rv.Len(); i++ {
			flatten(fmt.Sprintf("%s.%d", prefix, i), rv.Index(i).Interface(), out)
		}
		return
	}
	*out = append(*out, Pair[string, any]{Key: prefix, Value: v})
}

func valueSet[K comparable, V any](c *Collection[K, V]) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(c.pairs))
	for _, p := range c.pairs {
		set[identity.Key(p.Value)] = struct{}{}
	}
	return set
}
