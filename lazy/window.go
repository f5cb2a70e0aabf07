package lazy

import (
	"iter"

	"github.com/on-the-ground/lazyseq/eager"
)

// ringBuffer is the fixed-capacity circular buffer behind Take with a
// negative count. Writes wrap around and overwrite the oldest entry.
type ringBuffer[K comparable, V any] struct {
	buf []Pair[K, V]
	pos int
}

func newRingBuffer[K comparable, V any](capacity int) *ringBuffer[K, V] {
	return &ringBuffer[K, V]{buf: make([]Pair[K, V], capacity)}
}

func (r *ringBuffer[K, V]) push(k K, v V) {
	r.buf[r.pos%len(r.buf)] = Pair[K, V]{Key: k, Value: v}
	r.pos++
}

// drain returns the surviving entries oldest-to-newest. Once the buffer has
// wrapped, the oldest entry sits at pos % cap, not at index 0.
func (r *ringBuffer[K, V]) drain() []Pair[K, V] {
	capacity := len(r.buf)
	if r.pos <= capacity {
		return r.buf[:r.pos]
	}
	out := make([]Pair[K, V], 0, capacity)
	start := r.pos % capacity
	for i := 0; i < capacity; i++ {
		out = append(out, r.buf[(start+i)%capacity])
	}
	return out
}

// takeLast yields the final n pairs of the sequence. Nothing is yielded
// until the upstream is fully drained, since "last n" is unknowable before
// the source ends.
func (s Seq[K, V]) takeLast(n int) Seq[K, V] {
	return New(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			rb := newRingBuffer[K, V](n)
			for k, v := range s.iterate() {
				rb.push(k, v)
			}
			for _, p := range rb.drain() {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}
	})
}

// Chunk groups the stream into consecutive fixed-size eager groups keyed by
// a dense 0-based chunk index. The last group may be shorter. A size of zero
// or less yields nothing. Chunk, ChunkWhile, and Sliding are package
// functions for the same reason as Zip: their group type embeds V, which a
// method cannot instantiate finitely.
func Chunk[K comparable, V any](s Seq[K, V], size int) Seq[int, *eager.Collection[K, V]] {
	return New(func() iter.Seq2[int, *eager.Collection[K, V]] {
		return func(yield func(int, *eager.Collection[K, V]) bool) {
			if size <= 0 {
				return
			}
			var batch []Pair[K, V]
			idx := 0
			for k, v := range s.iterate() {
				batch = append(batch, Pair[K, V]{Key: k, Value: v})
				if len(batch) < size {
					continue
				}
				if !yield(idx, eager.Materialize(batch)) {
					return
				}
				idx++
				batch = batch[:0]
			}
			if len(batch) > 0 {
				yield(idx, eager.Materialize(batch))
			}
		}
	})
}

// ChunkWhile starts a new group whenever pred returns false for the next
// candidate pair compared against the group accumulated so far. The first
// element always opens the first group.
func ChunkWhile[K comparable, V any](
	s Seq[K, V],
	pred func(v V, k K, group *eager.Collection[K, V]) bool,
) Seq[int, *eager.Collection[K, V]] {
	return New(func() iter.Seq2[int, *eager.Collection[K, V]] {
		return func(yield func(int, *eager.Collection[K, V]) bool) {
			var batch []Pair[K, V]
			idx := 0
			for k, v := range s.iterate() {
				if len(batch) > 0 && !pred(v, k, eager.Materialize(batch)) {
					if !yield(idx, eager.Materialize(batch)) {
						return
					}
					idx++
					batch = batch[:0]
				}
				batch = append(batch, Pair[K, V]{Key: k, Value: v})
			}
			if len(batch) > 0 {
				yield(idx, eager.Materialize(batch))
			}
		}
	})
}

// Sliding yields overlapping windows of size consecutive pairs, advancing
// the window start by step. Only full windows are yielded; with step > size
// the pairs in the gap between windows appear in no window at all.
func Sliding[K comparable, V any](s Seq[K, V], size, step int) Seq[int, *eager.Collection[K, V]] {
	return New(func() iter.Seq2[int, *eager.Collection[K, V]] {
		return func(yield func(int, *eager.Collection[K, V]) bool) {
			if size <= 0 || step <= 0 {
				return
			}
			buffer := make([]Pair[K, V], 0, size)
			skip := 0
			idx := 0
			for k, v := range s.iterate() {
				if skip > 0 {
					skip--
					continue
				}
				buffer = append(buffer, Pair[K, V]{Key: k, Value: v})
				if len(buffer) < size {
					continue
				}
				if !yield(idx, eager.Materialize(buffer)) {
					return
				}
				idx++
				if step < size {
					copy(buffer, buffer[step:])
					buffer = buffer[:size-step]
				} else {
					buffer = buffer[:0]
					skip = step - size
				}
			}
		}
	})
}
