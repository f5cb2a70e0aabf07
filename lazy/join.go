package lazy

import "iter"

// Concat appends the other sequences after the receiver. Keys are reindexed
// to a dense 0-based sequence across the whole result.
func (s Seq[K, V]) Concat(others ...Seq[K, V]) Seq[int, V] {
	all := append([]Seq[K, V]{s}, others...)
	return New(func() iter.Seq2[int, V] {
		return func(yield func(int, V) bool) {
			i := 0
			for _, seq := range all {
				for _, v := range seq.iterate() {
					if !yield(i, v) {
						return
					}
					i++
				}
			}
		}
	})
}

// Zip advances s and every other sequence in lock-step, yielding one group
// per step with s's element first, then the others in argument order. The
// stream stops as soon as any input is exhausted. It is a package function
// because a method result embedding V ([]V here) would chain Seq
// instantiations without bound.
func Zip[K comparable, V any](s Seq[K, V], others ...Seq[K, V]) Seq[int, []V] {
	return New(func() iter.Seq2[int, []V] {
		return func(yield func(int, []V) bool) {
			nexts := make([]func() (K, V, bool), len(others))
			for i, other := range others {
				next, stop := iter.Pull2(other.iterate())
				defer stop()
				nexts[i] = next
			}

			i := 0
			for _, v := range s.iterate() {
				group := make([]V, 0, len(others)+1)
				group = append(group, v)
				for _, next := range nexts {
					_, w, ok := next()
					if !ok {
						return
					}
					group = append(group, w)
				}
				if !yield(i, group) {
					return
				}
				i++
			}
		}
	})
}
