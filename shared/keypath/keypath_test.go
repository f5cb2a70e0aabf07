package keypath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/lazyseq/shared/keypath"
)

type inner struct {
	Name string
}

type outer struct {
	ID    int
	Child *inner
	Tags  []string
	meta  string
}

func TestResolveMap(t *testing.T) {
	el := map[string]any{
		"user": map[string]any{"name": "ada"},
	}
	v, ok := keypath.Resolve(el, "user.name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)
}

func TestResolveTypedMap(t *testing.T) {
	el := map[string]int{"a": 1}
	v, ok := keypath.Resolve(el, "a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestResolveStructAndPointer(t *testing.T) {
	el := outer{ID: 7, Child: &inner{Name: "x"}, Tags: []string{"t0", "t1"}}

	v, ok := keypath.Resolve(el, "Child.Name")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = keypath.Resolve(&el, "ID")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestResolveCaseInsensitiveFallback(t *testing.T) {
	v, ok := keypath.Resolve(outer{ID: 3}, "id")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestResolveSliceIndex(t *testing.T) {
	el := outer{Tags: []string{"t0", "t1"}}
	v, ok := keypath.Resolve(el, "Tags.1")
	require.True(t, ok)
	assert.Equal(t, "t1", v)

	_, ok = keypath.Resolve(el, "Tags.9")
	assert.False(t, ok)
	_, ok = keypath.Resolve(el, "Tags.x")
	assert.False(t, ok)
}

func TestResolveMisses(t *testing.T) {
	_, ok := keypath.Resolve(nil, "a")
	assert.False(t, ok)

	_, ok = keypath.Resolve(map[string]any{"a": 1}, "b")
	assert.False(t, ok)

	_, ok = keypath.Resolve(outer{}, "Child.Name")
	assert.False(t, ok, "nil pointer mid-path")

	_, ok = keypath.Resolve(outer{meta: "hidden"}, "meta")
	assert.False(t, ok, "unexported fields stay unreachable")

	_, ok = keypath.Resolve(42, "anything")
	assert.False(t, ok)
}

func TestResolveEmptyPath(t *testing.T) {
	v, ok := keypath.Resolve("self", "")
	require.True(t, ok)
	assert.Equal(t, "self", v)
}

func TestAs(t *testing.T) {
	el := map[string]any{"n": 42}

	n, ok := keypath.As[int](el, "n")
	require.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = keypath.As[string](el, "n")
	assert.False(t, ok)
}
