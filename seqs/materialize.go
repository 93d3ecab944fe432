package seqs

import (
	"iter"

	"rangekit/containers"
)

// ToArray collects seq into a new array. The size is unknown up front, so the
// array grows as elements arrive.
func ToArray[T any](seq iter.Seq[T]) *containers.Array[T] {
	return ToArrayN(seq, 0)
}

// ToArrayN is ToArray with room for n elements reserved before the first one arrives.
func ToArrayN[T any](seq iter.Seq[T], n int) *containers.Array[T] {
	a := containers.NewArray[T](n)
	for v := range seq {
		a.Add(v)
	}
	return a
}

// Collect copies a sized range into a new array, reserving exactly r.Num() slots.
func Collect[T any](r containers.Range[T]) *containers.Array[T] {
	return ToArrayN(r.Values(), r.Num())
}

// ToArrayFunc collects f applied to each element.
func ToArrayFunc[T, R any](seq iter.Seq[T], f func(T) R) *containers.Array[R] {
	return ToArray(Select(seq, f))
}

// CollectFunc is Collect with a projection. A projection keeps the element
// count, so the reservation is still exact.
func CollectFunc[T, R any](r containers.Range[T], f func(T) R) *containers.Array[R] {
	return ToArrayN(Select(r.Values(), f), r.Num())
}

// ToSet collects the distinct elements of seq in first-seen order.
func ToSet[T comparable](seq iter.Seq[T]) *containers.Set[T] {
	return ToSetN(seq, 0)
}

// ToSetN is ToSet with room for n elements reserved up front.
func ToSetN[T comparable](seq iter.Seq[T], n int) *containers.Set[T] {
	s := containers.NewSet[T](n)
	for v := range seq {
		s.Add(v)
	}
	return s
}

// CollectSet copies a sized range into a new set, reserving r.Num() slots.
func CollectSet[T comparable](r containers.Range[T]) *containers.Set[T] {
	return ToSetN(r.Values(), r.Num())
}

// ToSetFunc collects the distinct results of f.
func ToSetFunc[T any, R comparable](seq iter.Seq[T], f func(T) R) *containers.Set[R] {
	return ToSet(Select(seq, f))
}
