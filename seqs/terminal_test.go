package seqs_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rangekit/engine"
	"rangekit/geom"
	"rangekit/seqs"
)

func TestCount(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 5, seqs.Count(input))
	assert.Equal(t, 2, seqs.CountFunc(input, isEven))
	assert.Equal(t, seqs.Count(seqs.Where(input, isEven)), seqs.CountFunc(input, isEven))
	assert.Equal(t, 0, seqs.Count(slices.Values([]int(nil))))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 15, seqs.Sum(slices.Values([]int{1, 2, 3, 4, 5})))
	assert.Equal(t, 0, seqs.Sum(slices.Values([]int(nil))))
	assert.InDelta(t, 3.75, seqs.Sum(slices.Values([]float64{1.5, 2.25})), 1e-9)
	assert.Equal(t, "abc", seqs.Sum(slices.Values([]string{"a", "b", "c"})))
	assert.Equal(t, uint8(255), seqs.Sum(slices.Values([]uint8{200, 55})))
}

func TestSumOf(t *testing.T) {
	t.Run("Vector", func(t *testing.T) {
		got := seqs.SumOf(slices.Values([]geom.Vector{{X: 1}, {Y: 2}, {Z: 3}}))
		assert.Equal(t, geom.Vector{X: 1, Y: 2, Z: 3}, got)
	})

	t.Run("EmptyQuatIsIdentity", func(t *testing.T) {
		got := seqs.SumOf(slices.Values([]geom.Quat(nil)))
		assert.Equal(t, geom.QuatIdentity, got)
	})

	t.Run("Decimal", func(t *testing.T) {
		prices := []decimal.Decimal{
			decimal.RequireFromString("0.10"),
			decimal.RequireFromString("0.20"),
		}
		got := seqs.SumOf(slices.Values(prices))
		assert.True(t, got.Equal(decimal.RequireFromString("0.3")), "got %s", got)
	})

	t.Run("Func", func(t *testing.T) {
		actors := []*Actor{newActor("sum-a", 10), newActor("sum-b", 32)}
		health := seqs.SumFunc(slices.Values(actors), func(a *Actor) int { return a.Health })
		assert.Equal(t, 42, health)

		offsets := seqs.SumOfFunc(slices.Values(actors), func(a *Actor) geom.Vector {
			return geom.Vector{X: float64(a.Health)}
		})
		assert.Equal(t, geom.Vector{X: 42}, offsets)
	})
}

func TestAccumulate(t *testing.T) {
	fold := func(acc string, n int) string {
		return "(" + acc + "+" + strconv.Itoa(n) + ")"
	}

	assert.Equal(t, "seed", seqs.Accumulate(slices.Values([]int(nil)), "seed", fold))
	assert.Equal(t, "((s+1)+2)", seqs.Accumulate(slices.Values([]int{1, 2}), "s", fold))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, 0, seqs.Default[int]())
	assert.Equal(t, "", seqs.Default[string]())
	assert.Nil(t, seqs.Default[*Actor]())
	assert.Nil(t, seqs.Default[engine.Object]())
	assert.Equal(t, geom.QuatIdentity, seqs.Default[geom.Quat]())
	assert.Equal(t, geom.Vector{}, seqs.Default[geom.Vector]())
}

func TestFirstOrDefault(t *testing.T) {
	assert.Equal(t, 4, seqs.FirstOrDefault(slices.Values([]int{4, 5})))
	assert.Equal(t, 0, seqs.FirstOrDefault(slices.Values([]int(nil))))
	assert.Equal(t, geom.QuatIdentity, seqs.FirstOrDefault(slices.Values([]geom.Quat(nil))))

	assert.Equal(t, 6, seqs.FirstOrDefaultFunc(slices.Values([]int{1, 3, 6, 8}), isEven))
	assert.Equal(t, 0, seqs.FirstOrDefaultFunc(slices.Values([]int{1, 3}), isEven))
}

func TestFirst(t *testing.T) {
	assert.True(t, seqs.First(slices.Values([]int(nil))).IsAbsent())

	// Present zero is distinguishable from absent.
	got := seqs.First(slices.Values([]int{0, 1}))
	assert.True(t, got.IsPresent())
	assert.Equal(t, 0, got.MustGet())

	assert.Equal(t, 8, seqs.FirstFunc(slices.Values([]int{1, 8}), isEven).OrElse(-1))
	assert.Equal(t, -1, seqs.FirstFunc(slices.Values([]int{1, 3}), isEven).OrElse(-1))
}

func TestAggregates(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	tests := []struct {
		name     string
		input    []int
		all      bool
		any      bool
		none     bool
		truthy   bool
		noTruthy bool
		notEmpty bool
	}{
		{"Empty", nil, true, false, true, true, true, false},
		{"AllPositive", []int{1, 2}, true, true, false, true, false, true},
		{"Mixed", []int{-1, 0, 2}, false, true, false, false, false, true},
		{"Zeros", []int{0, 0}, false, false, true, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := slices.Values(tt.input)
			assert.Equal(t, tt.all, seqs.All(seq, positive), "All")
			assert.Equal(t, tt.any, seqs.Any(seq, positive), "Any")
			assert.Equal(t, tt.none, seqs.None(seq, positive), "None")
			assert.Equal(t, tt.truthy, seqs.AllTruthy(seq), "AllTruthy")
			assert.Equal(t, tt.noTruthy, seqs.NoneTruthy(seq), "NoneTruthy")
			assert.Equal(t, tt.notEmpty, seqs.NotEmpty(seq), "NotEmpty")
		})
	}
}

func TestAggregates_PointerLike(t *testing.T) {
	a := newActor("truthy-a", 1)

	assert.True(t, seqs.AllTruthy(slices.Values([]*Actor{a, a})))
	assert.False(t, seqs.AllTruthy(slices.Values([]*Actor{a, nil})))
	assert.True(t, seqs.NoneTruthy(slices.Values([]engine.Object{nil, nil})))
	assert.True(t, seqs.AllTruthy(slices.Values([]bool{true, true})))
	assert.False(t, seqs.AllTruthy(slices.Values([]bool{true, false})))
}
