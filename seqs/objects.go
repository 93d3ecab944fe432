package seqs

import (
	"iter"

	"rangekit/engine"
)

// Cast yields each element converted to T with engine.Cast. Elements may be
// objects or object handles; nulls and mismatches become the zero T.
func Cast[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(engine.Cast[T](engine.ResolveObject(v))) {
				return
			}
		}
	}
}

// ExactCast is Cast that only accepts objects whose class is exactly T's.
func ExactCast[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(engine.ExactCast[T](engine.ResolveObject(v))) {
				return
			}
		}
	}
}

// CastChecked is CastCheckedMode with engine.NullChecked.
func CastChecked[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	return CastCheckedMode[T](seq, engine.NullChecked)
}

// CastCheckedMode yields each element converted with engine.CastChecked.
// The first element that fails the cast is fatal.
func CastCheckedMode[T, E any](seq iter.Seq[E], mode engine.CheckMode) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(engine.CastChecked[T](engine.ResolveObject(v), mode)) {
				return
			}
		}
	}
}

// OfType yields the elements that are a T, converted to T. Nulls and
// elements of other types are dropped.
func OfType[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			t, ok := engine.TryCast[T](engine.ResolveObject(v))
			if !ok {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// OfExactType is OfType restricted to objects whose class is exactly T's.
func OfExactType[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := engine.StaticClass[T]()
		if c == nil {
			return
		}
		for v := range seq {
			obj := engine.ResolveObject(v)
			if obj == nil || obj.Class() != c {
				continue
			}
			t, ok := engine.TryCast[T](obj)
			if !ok {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// OfClass keeps the elements whose object is of class c or a subclass.
// Elements are yielded unchanged.
func OfClass[E any](seq iter.Seq[E], c *engine.Class) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range seq {
			if !engine.IsA(engine.ResolveObject(v), c) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
