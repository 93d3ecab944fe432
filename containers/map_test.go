package containers_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangekit/containers"
)

func TestMap(t *testing.T) {
	m := containers.NewMap[string, int](0)
	m.Add("k1", 1)
	m.Add("k2", 2)
	m.Add("k1", 10)

	assert.Equal(t, 2, m.Num())
	assert.Equal(t, []string{"k1", "k2"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{10, 2}, slices.Collect(m.Values()))
	assert.Equal(t, map[string]int{"k1": 10, "k2": 2}, maps.Collect(m.All()))

	p := m.Find("k2")
	require.NotNil(t, p)
	*p = 20
	v, ok := m.FindRef("k2")
	require.True(t, ok)
	assert.Equal(t, 20, *v)

	_, ok = m.FindRef("missing")
	assert.False(t, ok)
	assert.Nil(t, m.Find("missing"))

	assert.True(t, m.Remove("k1"))
	assert.False(t, m.Contains("k1"))
	assert.Equal(t, 20, *m.Find("k2"), "index rebuilt after remove")
}

func TestMap_IsRange(t *testing.T) {
	var r containers.Range[int] = containers.NewMap[string, int](0)
	assert.Equal(t, 0, r.Num())

	var f containers.Finder[string, int] = containers.NewMap[string, int](0)
	assert.Nil(t, f.Find("x"))
}
