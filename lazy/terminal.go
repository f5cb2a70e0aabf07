package lazy

import (
	"cmp"

	"github.com/on-the-ground/lazyseq/eager"
	"github.com/on-the-ground/lazyseq/shared/cmpop"
)

// First returns the first pair's value, or the first matching one when a
// predicate is given. It stops pulling at the first match and never forces
// full consumption.
func (s Seq[K, V]) First(preds ...func(v V, k K) bool) (V, bool) {
	pred := combinePreds(preds)
	for k, v := range s.iterate() {
		if pred(v, k) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// FirstOr is First with a fallback value.
func (s Seq[K, V]) FirstOr(def V, preds ...func(v V, k K) bool) V {
	if v, ok := s.First(preds...); ok {
		return v
	}
	return def
}

// FirstOrFail is First returning ErrNoElements when nothing matches.
func (s Seq[K, V]) FirstOrFail(preds ...func(v V, k K) bool) (V, error) {
	if v, ok := s.First(preds...); ok {
		return v, nil
	}
	var zero V
	return zero, ErrNoElements
}

// Sole returns the single matching value. It fails with ErrNoElements when
// there is no match and with a CardinalityError wrapping ErrMultipleElements
// when there is more than one; counting stops at the second match.
func (s Seq[K, V]) Sole(preds ...func(v V, k K) bool) (V, error) {
	pred := combinePreds(preds)
	var found V
	count := 0
	for k, v := range s.iterate() {
		if !pred(v, k) {
			continue
		}
		found = v
		count++
		if count > 1 {
			break
		}
	}
	switch count {
	case 0:
		var zero V
		return zero, ErrNoElements
	case 1:
		return found, nil
	default:
		var zero V
		return zero, &CardinalityError{Count: count, Err: ErrMultipleElements}
	}
}

// Last returns the final (matching) value. It necessarily consumes the whole
// sequence.
func (s Seq[K, V]) Last(preds ...func(v V, k K) bool) (V, bool) {
	pred := combinePreds(preds)
	var last V
	found := false
	for k, v := range s.iterate() {
		if pred(v, k) {
			last = v
			found = true
		}
	}
	return last, found
}

// LastOr is Last with a fallback value.
func (s Seq[K, V]) LastOr(def V, preds ...func(v V, k K) bool) V {
	if v, ok := s.Last(preds...); ok {
		return v
	}
	return def
}

// Contains reports whether any pair satisfies pred, stopping at the first
// match.
func (s Seq[K, V]) Contains(pred func(v V, k K) bool) bool {
	_, ok := s.First(pred)
	return ok
}

// ContainsValue reports whether any value loosely equals target.
func (s Seq[K, V]) ContainsValue(target any) bool {
	return s.Contains(func(v V, _ K) bool {
		return cmpop.Compare(v, cmpop.OpEq, target)
	})
}

// Search returns the key of the first value loosely equal to target.
func (s Seq[K, V]) Search(target any) (K, bool) {
	return s.SearchFunc(func(v V, _ K) bool {
		return cmpop.Compare(v, cmpop.OpEq, target)
	})
}

// SearchFunc returns the key of the first pair satisfying pred.
func (s Seq[K, V]) SearchFunc(pred func(v V, k K) bool) (K, bool) {
	for k, v := range s.iterate() {
		if pred(v, k) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Count returns the number of pairs. A sequence backed by an in-memory
// snapshot answers from its length without traversal; anything else is
// drained and counted.
func (s Seq[K, V]) Count() int {
	if ls, ok := s.src.(pairsSource[K, V]); ok {
		return ls.length()
	}
	n := 0
	for range s.iterate() {
		n++
	}
	return n
}

// Each invokes fn per pair in order, stopping early when fn returns false.
func (s Seq[K, V]) Each(fn func(v V, k K) bool) {
	for k, v := range s.iterate() {
		if !fn(v, k) {
			return
		}
	}
}

// Collect drains the pipeline into an eager collection.
func (s Seq[K, V]) Collect() *eager.Collection[K, V] {
	return eager.Materialize(s.Pairs())
}

// Pairs drains the pipeline into a pair slice.
func (s Seq[K, V]) Pairs() []Pair[K, V] {
	var out []Pair[K, V]
	for k, v := range s.iterate() {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// Values drains the pipeline into a value slice.
func (s Seq[K, V]) Values() []V {
	var out []V
	for _, v := range s.iterate() {
		out = append(out, v)
	}
	return out
}

// Keys drains the pipeline into a key slice.
func (s Seq[K, V]) Keys() []K {
	var out []K
	for k := range s.iterate() {
		out = append(out, k)
	}
	return out
}

// Reduce folds the sequence left-to-right from initial.
func Reduce[K comparable, V, R any](s Seq[K, V], initial R, fn func(acc R, v V, k K) R) R {
	acc := initial
	for k, v := range s.iterate() {
		acc = fn(acc, v, k)
	}
	return acc
}

// Number covers the element types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds every value.
func Sum[K comparable, V Number](s Seq[K, V]) V {
	return Reduce(s, V(0), func(acc V, v V, _ K) V { return acc + v })
}

// Min returns the smallest value; false on an empty sequence.
func Min[K comparable, V cmp.Ordered](s Seq[K, V]) (V, bool) {
	var best V
	found := false
	for _, v := range s.iterate() {
		if !found || v < best {
			best = v
			found = true
		}
	}
	return best, found
}

// Max returns the largest value; false on an empty sequence.
func Max[K comparable, V cmp.Ordered](s Seq[K, V]) (V, bool) {
	var best V
	found := false
	for _, v := range s.iterate() {
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

func combinePreds[K comparable, V any](preds []func(v V, k K) bool) func(v V, k K) bool {
	if len(preds) == 0 || preds[0] == nil {
		return func(V, K) bool { return true }
	}
	return preds[0]
}
