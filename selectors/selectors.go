// Package selectors provides ready-made projections for seqs.Select and friends.
package selectors

import (
	"rangekit/containers"
	"rangekit/engine"
	"rangekit/handle"
)

// CDO returns the class default object of a class-like value: a *engine.Class,
// a class handle or a generic handle over engine.Class. Null input yields nil.
func CDO[E any](v E) engine.Object {
	c := engine.ResolveClass(v)
	if c == nil {
		return nil
	}
	return c.DefaultObject()
}

type typedDefault[T any] interface {
	DefaultObject() T
}

// TypedCDO is CDO cast to T. Handles that already know T, such as
// engine.SubclassOf[T], answer directly.
func TypedCDO[T, E any](v E) T {
	if handle.IsNull(v) {
		var zero T
		return zero
	}
	if h, ok := any(v).(typedDefault[T]); ok {
		return h.DefaultObject()
	}
	return engine.Cast[T](CDO(v))
}

// Find returns a projection that looks each key up in finder.
// Null keys and misses map to nil.
func Find[K, V any](finder containers.Finder[K, V]) func(K) *V {
	return func(key K) *V {
		if handle.IsNull(key) || handle.IsNull(finder) {
			return nil
		}
		return finder.Find(key)
	}
}

// FindIn returns a projection that searches a for an element equal to the key.
func FindIn[T comparable](a *containers.Array[T]) func(T) *T {
	return Find(containers.ArrayFinder(a))
}
