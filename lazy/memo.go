package lazy

import (
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memoSource is the memoizing cache adapter: it owns the single traversal of
// its parent source and an append-only cache of every position observed so
// far. Each iterate call returns an independent cursor over the shared
// cache, so repeated or partial consumption drives the parent at most once
// per position.
//
// The cache is append-only and positions are immutable once written, which
// is what makes multiple sequential cursors safe. Advancement itself is
// single-writer by the engine's cooperative contract; concurrent consumers
// must serialize externally.
type memoSource[K comparable, V any] struct {
	id      string
	parent  source[K, V]
	entries []Pair[K, V]
	next    func() (K, V, bool)
	stop    func()
	started bool
	done    bool
}

func newMemoSource[K comparable, V any](parent source[K, V]) *memoSource[K, V] {
	return &memoSource[K, V]{
		id:     uuid.New().String(),
		parent: parent,
	}
}

// fetch returns the pair at position i, advancing the parent traversal
// through every not-yet-cached position up to i. Exhaustion is cached too:
// once the parent reports the end, every cursor agrees nothing exists past
// the last cached position.
func (m *memoSource[K, V]) fetch(i int) (Pair[K, V], bool) {
	for len(m.entries) <= i {
		if m.done {
			var zero Pair[K, V]
			return zero, false
		}
		if !m.started {
			m.next, m.stop = iter.Pull2(m.parent.iterate())
			m.started = true
			logger.Debug("memoized traversal started", zap.String("memo_id", m.id))
		}
		k, v, ok := m.next()
		if !ok {
			m.done = true
			m.stop()
			logger.Debug("memoized traversal exhausted",
				zap.String("memo_id", m.id),
				zap.Int("cached", len(m.entries)),
			)
			var zero Pair[K, V]
			return zero, false
		}
		m.entries = append(m.entries, Pair[K, V]{Key: k, Value: v})
	}
	return m.entries[i], true
}

// iterate returns a fresh cursor that replays cached positions and advances
// the shared parent traversal only for unseen ones.
func (m *memoSource[K, V]) iterate() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; ; i++ {
			p, ok := m.fetch(i)
			if !ok {
				return
			}
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Remember returns a sequence backed by a memoizing cache adapter over this
// sequence's traversal. Every traversal of the result, complete or partial,
// shares one cache, so upstream side effects run at most once per position.
// Calling Remember on an already remembered sequence returns it unchanged.
func (s Seq[K, V]) Remember() Seq[K, V] {
	if s.src == nil {
		return Empty[K, V]()
	}
	if _, ok := s.src.(*memoSource[K, V]); ok {
		return s
	}
	return Seq[K, V]{src: newMemoSource(s.src)}
}
