package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Addable is the set of types with a built-in + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Adder is implemented by value types that define their own addition,
// such as geom.Vector or decimal.Decimal.
type Adder[T any] interface {
	Add(T) T
}

// Sum adds the elements of seq. The first element seeds the total, so for an
// empty sequence Sum returns Default[T]() rather than a made-up zero.
func Sum[T Addable](seq iter.Seq[T]) T {
	var total T
	first := true
	for v := range seq {
		if first {
			total = v
			first = false
			continue
		}
		total += v
	}
	if first {
		return Default[T]()
	}
	return total
}

// SumOf is Sum for types that add through an Add method.
func SumOf[T Adder[T]](seq iter.Seq[T]) T {
	var total T
	first := true
	for v := range seq {
		if first {
			total = v
			first = false
			continue
		}
		total = total.Add(v)
	}
	if first {
		return Default[T]()
	}
	return total
}

// SumFunc sums f applied to each element.
func SumFunc[T any, R Addable](seq iter.Seq[T], f func(T) R) R {
	return Sum(Select(seq, f))
}

// SumOfFunc is SumFunc for types that add through an Add method.
func SumOfFunc[T any, R Adder[R]](seq iter.Seq[T], f func(T) R) R {
	return SumOf(Select(seq, f))
}

// Accumulate folds seq from the left, starting at seed.
// An empty sequence returns seed unchanged.
func Accumulate[T, A any](seq iter.Seq[T], seed A, fold func(A, T) A) A {
	acc := seed
	for v := range seq {
		acc = fold(acc, v)
	}
	return acc
}
