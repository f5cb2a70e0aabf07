package lazy_test

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/lazyseq/eager"
	"github.com/on-the-ground/lazyseq/lazy"
)

func TestSortedDelegatesLazily(t *testing.T) {
	pulls := 0
	sorted := lazy.Map(countingSource(4, &pulls), func(v, _ int) map[string]any {
		return map[string]any{"n": 10 - v}
	}).Sorted(eager.SortKey{Path: "n"})

	assert.Zero(t, pulls, "delegation defers until consumption")

	first, ok := sorted.First()
	require.True(t, ok)
	assert.Equal(t, 6, first["n"])
	assert.Equal(t, 4, pulls, "sorting forces a full drain")
}

func TestSortedMultiKeyStable(t *testing.T) {
	type row struct {
		Group string
		Rank  int
		Tag   string
	}
	rows := lazy.FromValues(
		row{"b", 2, "first"},
		row{"a", 1, "second"},
		row{"b", 1, "third"},
		row{"a", 1, "fourth"},
	)
	got := rows.Sorted(
		eager.SortKey{Path: "Group"},
		eager.SortKey{Path: "Rank", Desc: true},
	).Values()

	want := []row{
		{"a", 1, "second"},
		{"a", 1, "fourth"},
		{"b", 2, "first"},
		{"b", 1, "third"},
	}
	assert.Equal(t, want, got)
}

func TestSortedValues(t *testing.T) {
	got := lazy.FromValues(3, 1, 2).SortedValues(cmp.Compare[int]).Values()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestShuffledKeepsElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	src := lazy.Range(1, 20)
	got := src.Shuffled(rng).Values()
	assert.ElementsMatch(t, src.Values(), got)
}

func TestSampleWithoutReplacement(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	got := lazy.Range(1, 10).Sample(4, rng).Values()
	require.Len(t, got, 4)
	for _, v := range got {
		assert.Contains(t, lazy.Range(1, 10).Values(), v)
	}
	unique := map[int]struct{}{}
	for _, v := range got {
		unique[v] = struct{}{}
	}
	assert.Len(t, unique, 4)
}

func TestUniqueAndDuplicates(t *testing.T) {
	src := lazy.FromValues("a", "b", "a", "c", "b", "a")
	assert.Equal(t, []string{"a", "b", "c"}, src.Unique().Values())
	assert.Equal(t, []string{"a", "b", "a"}, src.Duplicates().Values())
}

func TestDiffIntersect(t *testing.T) {
	a := lazy.FromValues(1, 2, 3, 4)
	b := lazy.FromValues(2, 4, 6)

	assert.Equal(t, []int{1, 3}, a.Diff(b).Values())
	assert.Equal(t, []int{2, 4}, a.Intersect(b).Values())
}

func TestDiffKeys(t *testing.T) {
	a := lazy.FromMap(map[string]int{"x": 1, "y": 2, "z": 3})
	b := lazy.FromMap(map[string]int{"y": 0})
	assert.Equal(t, []string{"x", "z"}, a.DiffKeys(b).Keys())
}

func TestDotFlattensNestedValues(t *testing.T) {
	src := lazy.FromMap(map[string]any{
		"user": map[string]any{
			"name":  "ada",
			"langs": []any{"go"},
		},
		"plain": 1,
	})
	dotted := src.Dot().Collect()

	name, ok := dotted.Get("user.name")
	require.True(t, ok)
	assert.Equal(t, "ada", name)

	lang, ok := dotted.Get("user.langs.0")
	require.True(t, ok)
	assert.Equal(t, "go", lang)

	plain, ok := dotted.Get("plain")
	require.True(t, ok)
	assert.Equal(t, 1, plain)
}
