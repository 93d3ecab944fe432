package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"rangekit/containers"
	"rangekit/seqs"
)

func TestToArray(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}

	var manual []int
	for _, v := range input {
		if isEven(v) {
			manual = append(manual, v)
		}
	}

	got := seqs.ToArray(seqs.Where(slices.Values(input), isEven))
	assert.Equal(t, manual, got.ToSlice())
	assert.Equal(t, len(manual), got.Num())
}

func TestToArrayN(t *testing.T) {
	got := seqs.ToArrayN(slices.Values([]int{1, 2}), 10)
	assert.Equal(t, 2, got.Num())
	assert.Equal(t, 10, got.Max())
}

func TestCollect(t *testing.T) {
	src := containers.ArrayOf(1, 2, 3, 4, 5)
	src.Reserve(100)

	got := seqs.Collect(src)
	assert.Equal(t, 5, got.Num())
	assert.Equal(t, 5, got.Max(), "reserves exactly the source size")
	assert.Equal(t, src.ToSlice(), got.ToSlice())

	names := seqs.CollectFunc(src, func(n int) string { return string(rune('0' + n)) })
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, names.ToSlice())
	assert.Equal(t, 5, names.Max())
}

func TestCollect_Map(t *testing.T) {
	m := containers.NewMap[string, int](0)
	m.Add("a", 1)
	m.Add("b", 2)

	got := seqs.Collect(m)
	assert.Equal(t, []int{1, 2}, got.ToSlice())
	assert.Equal(t, 2, got.Max())
}

func TestToArrayFunc(t *testing.T) {
	got := seqs.ToArrayFunc(slices.Values([]int{1, 2}), func(n int) int { return n * n })
	assert.Equal(t, []int{1, 4}, got.ToSlice())
}

func TestToSet(t *testing.T) {
	got := seqs.ToSet(slices.Values([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{3, 1, 2}, got.ToSlice())

	reserved := seqs.ToSetN(slices.Values([]int{1}), 8)
	assert.GreaterOrEqual(t, reserved.Max(), 8)

	fromSet := seqs.CollectSet(got)
	assert.Equal(t, got.ToSlice(), fromSet.ToSlice())

	parity := seqs.ToSetFunc(slices.Values([]int{1, 2, 3, 4}), isEven)
	assert.Equal(t, []bool{false, true}, parity.ToSlice())
}
