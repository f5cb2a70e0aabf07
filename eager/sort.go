package eager

import (
	"slices"

	"github.com/on-the-ground/lazyseq/shared/cmpop"
	"github.com/on-the-ground/lazyseq/shared/keypath"
)

// SortKey names one sort criterion: a dotted path into each value, optionally
// descending.
type SortKey struct {
	Path string
	Desc bool
}

// SortBy stable-sorts by the given keys in priority order. Values whose path
// does not resolve, or that cannot be ordered against each other, compare as
// equal under that key so the stable order preserves their relative input
// positions.
func (c *Collection[K, V]) SortBy(keys ...SortKey) *Collection[K, V] {
	out := c.Pairs()
	slices.SortStableFunc(out, func(a, b Pair[K, V]) int {
		for _, key := range keys {
			av, _ := keypath.Resolve(a.Value, key.Path)
			bv, _ := keypath.Resolve(b.Value, key.Path)
			cmp, ok := cmpop.Order(av, bv)
			if !ok || cmp == 0 {
				continue
			}
			if key.Desc {
				return -cmp
			}
			return cmp
		}
		return 0
	})
	return &Collection[K, V]{pairs: out}
}

// SortValues stable-sorts by the provided value comparison.
func (c *Collection[K, V]) SortValues(cmp func(a, b V) int) *Collection[K, V] {
	out := c.Pairs()
	slices.SortStableFunc(out, func(a, b Pair[K, V]) int {
		return cmp(a.Value, b.Value)
	})
	return &Collection[K, V]{pairs: out}
}
