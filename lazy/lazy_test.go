package lazy_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/lazyseq/lazy"
)

// countingSource yields 1..n, bumping *pulls once per element actually
// produced.
func countingSource(n int, pulls *int) lazy.Seq[int, int] {
	return lazy.New(func() iter.Seq2[int, int] {
		return func(yield func(int, int) bool) {
			for i := 0; i < n; i++ {
				*pulls++
				if !yield(i, i+1) {
					return
				}
			}
		}
	})
}

func even(v, _ int) bool { return v%2 == 0 }

func TestBuildingChainReadsNothing(t *testing.T) {
	pulls := 0
	s := countingSource(100, &pulls).
		Filter(even).
		Skip(1).
		Take(3).
		MapValues(func(v, _ int) int { return v * 10 })

	assert.Equal(t, 0, pulls, "no element may be read before a terminal operation")

	got := s.Values()
	assert.Equal(t, []int{40, 60, 80}, got)
}

func TestInfiniteFilterTake(t *testing.T) {
	got := lazy.RangeFrom(1).Filter(even).Take(3).Values()
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestEarlyTerminationStopsUpstream(t *testing.T) {
	pulls := 0
	_ = countingSource(100, &pulls).Take(2).Values()
	assert.Equal(t, 2, pulls, "upstream side effects past position n-1 must not run")
}

func TestReplayRestartsProducer(t *testing.T) {
	pulls := 0
	s := countingSource(3, &pulls)

	require.Equal(t, []int{1, 2, 3}, s.Values())
	require.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, 6, pulls, "each traversal restarts the producer")
}

func TestFromChannelRejected(t *testing.T) {
	ch := make(chan string)
	close(ch)
	_, err := lazy.FromChannel(ch)
	require.Error(t, err)
	assert.ErrorIs(t, err, lazy.ErrSingleUseSource)
}

func TestFromPullRejected(t *testing.T) {
	next, stop := iter.Pull2(lazy.FromValues(1, 2, 3).All())
	defer stop()
	_, err := lazy.FromPull(next)
	require.Error(t, err)
	assert.ErrorIs(t, err, lazy.ErrSingleUseSource)
}

func TestFromMapSortsKeys(t *testing.T) {
	s := lazy.FromMap(map[string]int{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestRangeInclusiveBothDirections(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, lazy.Range(2, 4).Values())
	assert.Equal(t, []int{4, 3, 2}, lazy.Range(4, 2).Values())
	assert.Equal(t, []int{7}, lazy.Range(7, 7).Values())
}

func TestTimesIsOneBased(t *testing.T) {
	s := lazy.Times(3, func(i int) int { return i * i })
	assert.Equal(t, []int{1, 4, 9}, s.Values())
	assert.Equal(t, []int{0, 1, 2}, s.Keys())
}

func TestFilterNilPredicateKeepsNonZero(t *testing.T) {
	got := lazy.FromValues(0, 1, 0, 2, 3, 0).Filter(nil).Values()
	assert.Equal(t, []int{1, 2, 3}, got)

	strs := lazy.FromValues("", "a", "", "b").Filter(nil).Values()
	assert.Equal(t, []string{"a", "b"}, strs)
}

func TestRejectIsNegatedFilter(t *testing.T) {
	got := lazy.FromValues(1, 2, 3, 4).Reject(even).Values()
	assert.Equal(t, []int{1, 3}, got)
}

func TestSkipWhileKeepsFirstFailingPair(t *testing.T) {
	got := lazy.FromValues(1, 2, 3, 1, 2).
		SkipWhile(func(v, _ int) bool { return v < 3 }).
		Values()
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestSkipUntilValueKeepsMatch(t *testing.T) {
	got := lazy.FromValues(1, 2, 3, 4).SkipUntilValue(3).Values()
	assert.Equal(t, []int{3, 4}, got)
}

func TestTakeWhileStopBoundaryExclusive(t *testing.T) {
	got := lazy.FromValues(1, 2, 3, 1).
		TakeWhile(func(v, _ int) bool { return v < 3 }).
		Values()
	assert.Equal(t, []int{1, 2}, got)
}

func TestTakeUntilValueExcludesMatch(t *testing.T) {
	got := lazy.RangeFrom(1).TakeUntilValue(4).Values()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSkipTakeComposition(t *testing.T) {
	src := lazy.FromValues(5, 6, 7, 8, 9)
	whole := src.Values()
	for k := 0; k <= len(whole); k++ {
		got := src.Take(k).Concat(src.Skip(k)).Values()
		assert.Equalf(t, whole, got, "take(%d) ++ skip(%d)", k, k)
	}
}

func TestConcatReindexesDensely(t *testing.T) {
	a := lazy.FromMap(map[string]int{"x": 1, "y": 2})
	b := lazy.FromMap(map[string]int{"z": 3})
	got := a.Concat(b)
	assert.Equal(t, []int{0, 1, 2}, got.Keys())
	assert.Equal(t, []int{1, 2, 3}, got.Values())
}

func TestMapWithKeysExpandsAndDrops(t *testing.T) {
	src := lazy.FromValues(1, 2, 3)
	got := lazy.MapWithKeys(src, func(v, _ int) []lazy.Pair[string, int] {
		if v == 2 {
			return nil // one input pair may expand into zero output pairs
		}
		return []lazy.Pair[string, int]{
			{Key: "a", Value: v},
			{Key: "b", Value: -v},
		}
	})
	assert.Equal(t, []string{"a", "b", "a", "b"}, got.Keys())
	assert.Equal(t, []int{1, -1, 3, -3}, got.Values())
}

func TestFlatMapReindexes(t *testing.T) {
	src := lazy.FromValues(1, 2)
	got := lazy.FlatMap(src, func(v, _ int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := 0; i < v; i++ {
				if !yield(v) {
					return
				}
			}
		}
	})
	assert.Equal(t, []int{1, 2, 2}, got.Values())
	assert.Equal(t, []int{0, 1, 2}, got.Keys())
}

func TestTapObservesWithoutAltering(t *testing.T) {
	var seen []int
	got := lazy.FromValues(1, 2, 3).
		Tap(func(v, _ int) { seen = append(seen, v) }).
		Values()
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestPanicsPropagateUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	s := lazy.FromValues(1, 2, 3).MapValues(func(v, _ int) int {
		if v == 2 {
			panic(boom)
		}
		return v
	})
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, boom, r, "engine must not wrap a callable's failure")
	}()
	_ = s.Values()
}
