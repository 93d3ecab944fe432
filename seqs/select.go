package seqs

import (
	"iter"

	"rangekit/engine"
	"rangekit/handle"
)

// Select yields f applied to each element of seq.
func Select[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// SelectNonNull is Select followed by NonNull.
func SelectNonNull[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			r := f(v)
			if handle.IsNull(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// NonNull drops null and invalid elements.
func NonNull[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if handle.IsNull(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// NonNullRef drops null elements and yields a *T for each remaining one.
// Elements are resolved with handle.Deref; object handles that cannot
// produce a *T directly are resolved through the object table and cast.
// Elements that resolve to nothing are dropped.
//
// Pointers obtained from weak handles are only guaranteed valid until the
// consumer returns from the current step.
func NonNullRef[T, E any](seq iter.Seq[E]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for v := range seq {
			p, ok := deref[T](v)
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func deref[T any](v any) (*T, bool) {
	if p, ok := handle.Deref[T](v); ok {
		return p, true
	}
	if obj := engine.ResolveObject(v); obj != nil {
		return engine.TryCast[*T](obj)
	}
	return nil, false
}

// Dereference yields a copy of the value behind each non-nil pointer.
func Dereference[T any](seq iter.Seq[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range seq {
			if p == nil {
				continue
			}
			if !yield(*p) {
				return
			}
		}
	}
}
