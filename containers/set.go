package containers

import (
	"iter"
	"slices"
)

// Set is a hash set that iterates in insertion order.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

func NewSet[T comparable](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Set[T]{
		index: make(map[T]int, capacity),
		items: make([]T, 0, capacity),
	}
}

func SetOf[T comparable](values ...T) *Set[T] {
	s := NewSet[T](len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts value and reports whether it was not already present.
func (s *Set[T]) Add(value T) bool {
	if _, ok := s.index[value]; ok {
		return false
	}
	s.index[value] = len(s.items)
	s.items = append(s.items, value)
	return true
}

// Emplace is Add under the engine's naming.
func (s *Set[T]) Emplace(value T) bool {
	return s.Add(value)
}

func (s *Set[T]) Contains(value T) bool {
	_, ok := s.index[value]
	return ok
}

// Remove deletes value and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	i, ok := s.index[value]
	if !ok {
		return false
	}
	delete(s.index, value)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

// Reserve grows the set so it can hold n elements without rehashing.
func (s *Set[T]) Reserve(n int) {
	if n <= cap(s.items) {
		return
	}
	s.items = slices.Grow(s.items, n-len(s.items))
	index := make(map[T]int, n)
	for k, v := range s.index {
		index[k] = v
	}
	s.index = index
}

func (s *Set[T]) Num() int {
	return len(s.items)
}

// Max returns the element count the set can hold before it grows.
func (s *Set[T]) Max() int {
	return cap(s.items)
}

// Find returns a pointer to the stored element equal to key, or nil.
func (s *Set[T]) Find(key T) *T {
	i, ok := s.index[key]
	if !ok {
		return nil
	}
	return &s.items[i]
}

func (s *Set[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s *Set[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
