package seqs

import (
	"iter"

	"github.com/samber/mo"

	"rangekit/handle"
)

// Identity is implemented by value types whose "nothing" value is not their
// zero value, like a rotation whose identity has W = 1.
type Identity[T any] interface {
	Identity() T
}

// Default returns T's identity value if T implements Identity, otherwise the zero value.
func Default[T any]() T {
	var zero T
	if handle.IsNull(zero) {
		return zero
	}
	if id, ok := any(zero).(Identity[T]); ok {
		return id.Identity()
	}
	return zero
}

// FirstOrDefault returns the first element of seq, or Default[T]() if seq is empty.
func FirstOrDefault[T any](seq iter.Seq[T]) T {
	for v := range seq {
		return v
	}
	return Default[T]()
}

// FirstOrDefaultFunc returns the first element that satisfies pred, or Default[T]().
func FirstOrDefaultFunc[T any](seq iter.Seq[T], pred func(T) bool) T {
	return FirstOrDefault(Where(seq, pred))
}

// First returns the first element of seq, if any.
func First[T any](seq iter.Seq[T]) mo.Option[T] {
	for v := range seq {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// FirstFunc returns the first element that satisfies pred, if any.
func FirstFunc[T any](seq iter.Seq[T], pred func(T) bool) mo.Option[T] {
	return First(Where(seq, pred))
}
