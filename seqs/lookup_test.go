package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangekit/containers"
	"rangekit/engine"
	"rangekit/seqs"
)

func TestLookup(t *testing.T) {
	k1 := newActor("lookup-k1", 1)
	k2 := newActor("lookup-k2", 1)

	values := containers.NewMap[engine.Object, string](0)
	values.Add(k1, "v1")

	keys := slices.Values([]engine.Object{k1, nil, k2})
	assert.Equal(t, []string{"v1"}, slices.Collect(seqs.Lookup(keys, values)))

	t.Run("Ref", func(t *testing.T) {
		refs := slices.Collect(seqs.LookupRef(keys, values))
		require.Len(t, refs, 1)

		*refs[0] = "changed"
		assert.Equal(t, "changed", *values.Find(k1))
	})

	t.Run("Order", func(t *testing.T) {
		values.Add(k2, "v2")
		keys := slices.Values([]engine.Object{k2, k1, k2})
		assert.Equal(t, []string{"v2", "changed", "v2"}, slices.Collect(seqs.Lookup(keys, values)))
	})
}

func TestLookup_Array(t *testing.T) {
	haystack := containers.ArrayOf(5, 3)
	got := slices.Collect(seqs.Lookup(slices.Values([]int{3, 9, 5}), containers.ArrayFinder(haystack)))
	assert.Equal(t, []int{3, 5}, got)
}

func TestLookup_NilFinder(t *testing.T) {
	var m *containers.Map[string, int]
	assert.Empty(t, slices.Collect(seqs.Lookup(slices.Values([]string{"a"}), m)))
}
