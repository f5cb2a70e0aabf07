package lazy_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberSharesOneUpstreamPass(t *testing.T) {
	pulls := 0
	r := countingSource(5, &pulls).Remember()

	first := r.Values()
	second := r.Values()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, first)
	assert.Equal(t, first, second, "replays must observe identical elements")
	assert.Equal(t, 5, pulls, "upstream side effects run exactly once per position")
}

func TestRememberPartialThenFullConsumption(t *testing.T) {
	pulls := 0
	r := countingSource(5, &pulls).Remember()

	require.Equal(t, []int{1, 2, 3}, r.Take(3).Values())
	require.Equal(t, 3, pulls, "partial consumption advances only as far as pulled")

	require.Equal(t, []int{1, 2, 3, 4, 5}, r.Values())
	assert.Equal(t, 5, pulls, "the full pass reuses the three cached positions")
}

func TestRememberInterleavedCursorsAgree(t *testing.T) {
	pulls := 0
	r := countingSource(4, &pulls).Remember()

	nextA, stopA := iter.Pull2(r.All())
	defer stopA()
	nextB, stopB := iter.Pull2(r.All())
	defer stopB()

	// Advance the cursors out of lock-step; both must see the same element
	// at each position and the upstream must never re-run one.
	_, a0, ok := nextA()
	require.True(t, ok)
	_, a1, ok := nextA()
	require.True(t, ok)
	_, b0, ok := nextB()
	require.True(t, ok)

	assert.Equal(t, a0, b0)
	assert.Equal(t, 1, a0)
	assert.Equal(t, 2, a1)
	assert.Equal(t, 2, pulls)

	for {
		if _, _, ok := nextB(); !ok {
			break
		}
	}
	assert.Equal(t, 4, pulls)
}

func TestRememberCachesExhaustion(t *testing.T) {
	pulls := 0
	r := countingSource(2, &pulls).Remember()

	require.Equal(t, 2, r.Count())
	require.Equal(t, 2, r.Count())
	assert.Equal(t, 2, pulls, "exhaustion is cached; later cursors agree without re-pulling")
}

func TestRememberIsIdempotent(t *testing.T) {
	pulls := 0
	r := countingSource(3, &pulls).Remember()
	rr := r.Remember()

	_ = r.Values()
	_ = rr.Values()
	assert.Equal(t, 3, pulls, "re-remembering must not add a second cache layer")
}

func TestRememberDownstreamStaysLazy(t *testing.T) {
	pulls := 0
	r := countingSource(100, &pulls).Remember()

	got := r.Filter(even).Take(2).Values()
	assert.Equal(t, []int{2, 4}, got)
	assert.Equal(t, 4, pulls, "remember must not force the upstream beyond demand")
}
