package containers_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangekit/containers"
)

func TestArray_Basic(t *testing.T) {
	a := containers.NewArray[int](0)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Num())

	assert.Equal(t, 0, a.Add(10))
	a.Append(20, 30)
	assert.Equal(t, 3, a.Num())

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, a.Set(1, 25))
	assert.Equal(t, []int{10, 25, 30}, a.ToSlice())

	*a.Emplace() = 40
	assert.Equal(t, []int{10, 25, 30, 40}, slices.Collect(a.Values()))

	a.Clear()
	assert.True(t, a.IsEmpty())
}

func TestArray_Bounds(t *testing.T) {
	a := containers.ArrayOf(1, 2, 3)

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 3},
		{"far past end", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Get(tt.index)
			assert.ErrorIs(t, err, containers.ErrIndexOutOfBounds)
			assert.ErrorIs(t, a.Set(tt.index, 0), containers.ErrIndexOutOfBounds)
			_, err = a.Remove(tt.index)
			assert.ErrorIs(t, err, containers.ErrIndexOutOfBounds)
			assert.Nil(t, a.Ref(tt.index))
			assert.False(t, a.IsValidIndex(tt.index))
		})
	}
}

func TestArray_Remove(t *testing.T) {
	a := containers.ArrayOf(0, 1, 10, 2)
	removed, err := a.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, 10, removed)
	assert.Equal(t, []int{0, 1, 2}, a.ToSlice())
}

func TestArray_ReserveShrink(t *testing.T) {
	a := containers.ArrayOf(1, 2)
	a.Reserve(64)
	assert.GreaterOrEqual(t, a.Max(), 64)
	assert.Equal(t, 2, a.Num())

	a.Reserve(1)
	assert.GreaterOrEqual(t, a.Max(), 64, "Reserve never shrinks")

	a.Shrink()
	assert.Equal(t, 2, a.Max())
}

func TestArray_RefAliasesStorage(t *testing.T) {
	a := containers.ArrayOf("a", "b")
	*a.Ref(1) = "z"
	v, _ := a.Get(1)
	assert.Equal(t, "z", v)
}

func TestArray_All(t *testing.T) {
	a := containers.ArrayOf("x", "y")
	var idx []int
	for i, v := range a.All() {
		idx = append(idx, i)
		_ = v
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestFindByKey(t *testing.T) {
	a := containers.ArrayOf(3, 5, 7, 5)

	p := containers.FindByKey(a, 5)
	require.NotNil(t, p)
	assert.Same(t, a.Ref(1), p, "first match wins")

	assert.Nil(t, containers.FindByKey(a, 4))
	assert.Nil(t, containers.FindByKey[int](nil, 4))

	f := containers.ArrayFinder(a)
	assert.Equal(t, 7, *f.Find(7))
	assert.Nil(t, f.Find(8))
}

func BenchmarkArray_Add(b *testing.B) {
	for b.Loop() {
		a := containers.NewArray[int](0)
		for i := range 1000 {
			a.Add(i)
		}
	}
}

func BenchmarkArray_AddReserved(b *testing.B) {
	for b.Loop() {
		a := containers.NewArray[int](1000)
		for i := range 1000 {
			a.Add(i)
		}
	}
}
