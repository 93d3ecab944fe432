package seqs

import (
	"iter"

	"rangekit/handle"
)

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// CountFunc counts the elements that satisfy pred.
func CountFunc[T any](seq iter.Seq[T], pred func(T) bool) int {
	return Count(Where(seq, pred))
}

func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred. It is true for an empty sequence.
func All[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// None reports whether no element satisfies pred.
func None[T any](seq iter.Seq[T], pred func(T) bool) bool {
	return !Any(seq, pred)
}

// AllTruthy reports whether every element is truthy in the sense of handle.Truthy.
func AllTruthy[T any](seq iter.Seq[T]) bool {
	return All(seq, truthy[T])
}

// NoneTruthy reports whether no element is truthy.
func NoneTruthy[T any](seq iter.Seq[T]) bool {
	return None(seq, truthy[T])
}

// NotEmpty reports whether seq yields at least one element.
func NotEmpty[T any](seq iter.Seq[T]) bool {
	for range seq {
		return true
	}
	return false
}

func truthy[T any](v T) bool {
	return handle.Truthy(v)
}
