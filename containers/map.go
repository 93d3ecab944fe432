package containers

import (
	"iter"
	"slices"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a hash map that iterates in insertion order.
type Map[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

func NewMap[K comparable, V any](capacity int) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Map[K, V]{
		index:   make(map[K]int, capacity),
		entries: make([]entry[K, V], 0, capacity),
	}
}

// Add stores value under key, replacing any existing value in place.
func (m *Map[K, V]) Add(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
}

// Find returns a pointer to the value stored under key, or nil.
func (m *Map[K, V]) Find(key K) *V {
	i, ok := m.index[key]
	if !ok {
		return nil
	}
	return &m.entries[i].value
}

// FindRef is like Find but reports a miss with ok instead of a nil pointer.
func (m *Map[K, V]) FindRef(key K) (value *V, ok bool) {
	value = m.Find(key)
	return value, value != nil
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

func (m *Map[K, V]) Remove(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.entries = slices.Delete(m.entries, i, i+1)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].key] = j
	}
	return true
}

func (m *Map[K, V]) Num() int {
	return len(m.entries)
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
