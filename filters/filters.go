// Package filters provides ready-made predicates for seqs.Where and friends.
// Every predicate treats null input as a non-match.
package filters

import (
	"rangekit/engine"
)

// IsChildOf matches class-like elements whose class is base or derives from it.
func IsChildOf[E any](base *engine.Class) func(E) bool {
	return func(v E) bool {
		c := engine.ResolveClass(v)
		return c != nil && c.IsChildOf(base)
	}
}

// IsChildOfType is IsChildOf with the base class taken from T.
func IsChildOfType[E, T any]() func(E) bool {
	return IsChildOf[E](engine.StaticClass[T]())
}

// IsA matches object-like elements whose object is of class c or a subclass.
func IsA[E any](c *engine.Class) func(E) bool {
	return func(v E) bool {
		return engine.IsA(engine.ResolveObject(v), c)
	}
}
