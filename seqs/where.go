package seqs

import (
	"iter"

	"rangekit/handle"
)

// Where yields the elements of seq that satisfy pred.
func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// WhereNot yields the elements of seq that do not satisfy pred.
func WhereNot[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// SafeWhere is Where for sequences that may hold null pointer-like values.
// Null and invalid elements are dropped without calling pred, so pred may
// dereference its argument freely.
func SafeWhere[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if handle.IsNull(v) || !pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SafeWhereNot yields the non-null elements of seq that do not satisfy pred.
// Null elements are dropped, not kept.
func SafeWhereNot[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if handle.IsNull(v) || pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
