package seqs

import (
	"iter"

	"rangekit/containers"
	"rangekit/selectors"
)

// Lookup yields the value stored under each key, in key order.
// Null keys and keys the finder does not hold are skipped.
func Lookup[K, V any](keys iter.Seq[K], finder containers.Finder[K, V]) iter.Seq[V] {
	return Dereference(LookupRef(keys, finder))
}

// LookupRef is Lookup yielding pointers into the finder's storage.
func LookupRef[K, V any](keys iter.Seq[K], finder containers.Finder[K, V]) iter.Seq[*V] {
	return NonNull(Select(keys, selectors.Find(finder)))
}
