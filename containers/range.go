package containers

import "iter"

// Range is a sized, iterable container.
type Range[T any] interface {
	Num() int
	Values() iter.Seq[T]
}

// Finder looks up the value stored under a key.
// The returned pointer aliases container storage and is nil when the key is absent.
type Finder[K, V any] interface {
	Find(key K) *V
}

type arrayFinder[T comparable] struct {
	a *Array[T]
}

func (f arrayFinder[T]) Find(key T) *T {
	return FindByKey(f.a, key)
}

// ArrayFinder adapts an Array to Finder using a linear equality search.
func ArrayFinder[T comparable](a *Array[T]) Finder[T, T] {
	return arrayFinder[T]{a: a}
}
