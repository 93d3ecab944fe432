package containers

import (
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

// Array is a growable, contiguous container.
type Array[T any] struct {
	data []T
}

func NewArray[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		data: make([]T, 0, capacity),
	}
}

// ArrayOf returns an array holding a copy of values.
func ArrayOf[T any](values ...T) *Array[T] {
	a := NewArray[T](len(values))
	a.data = append(a.data, values...)
	return a
}

// Add appends value and returns its index.
func (a *Array[T]) Add(value T) int {
	a.data = append(a.data, value)
	return len(a.data) - 1
}

// Emplace appends the zero value and returns a pointer to it for in-place construction.
func (a *Array[T]) Emplace() *T {
	var zero T
	a.data = append(a.data, zero)
	return &a.data[len(a.data)-1]
}

func (a *Array[T]) Append(values ...T) {
	a.data = append(a.data, values...)
}

// Reserve makes sure the array can hold n elements without reallocating.
// It never shrinks the array.
func (a *Array[T]) Reserve(n int) {
	if n > cap(a.data) {
		a.data = slices.Grow(a.data, n-len(a.data))
	}
}

func (a *Array[T]) Num() int {
	return len(a.data)
}

// Max returns the number of elements the array can hold before it reallocates.
func (a *Array[T]) Max() int {
	return cap(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

func (a *Array[T]) IsValidIndex(index int) bool {
	return index >= 0 && index < len(a.data)
}

func (a *Array[T]) Get(index int) (T, error) {
	if !a.IsValidIndex(index) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, index, len(a.data))
	}
	return a.data[index], nil
}

// Ref returns a pointer to the element at index, or nil if index is out of range.
func (a *Array[T]) Ref(index int) *T {
	if !a.IsValidIndex(index) {
		return nil
	}
	return &a.data[index]
}

func (a *Array[T]) Set(index int, value T) error {
	if !a.IsValidIndex(index) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, index, len(a.data))
	}
	a.data[index] = value
	return nil
}

// Remove deletes the element at index, preserving the order of the rest.
func (a *Array[T]) Remove(index int) (T, error) {
	if !a.IsValidIndex(index) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfBounds, index, len(a.data))
	}
	removed := a.data[index]
	copy(a.data[index:], a.data[index+1:])
	// let the vacated slot be collected
	clear(a.data[len(a.data)-1:])
	a.data = a.data[:len(a.data)-1]
	return removed, nil
}

// Clear empties the array but keeps its allocation.
func (a *Array[T]) Clear() {
	clear(a.data)
	a.data = a.data[:0]
}

// Shrink releases capacity beyond the current size.
func (a *Array[T]) Shrink() {
	a.data = slices.Clip(a.data)
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	return slices.Clone(a.data)
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.data)
}

func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.data)
}

func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.data)
}

// FindByKey returns a pointer to the first element equal to key, or nil.
func FindByKey[T comparable](a *Array[T], key T) *T {
	if a == nil {
		return nil
	}
	for i := range a.data {
		if a.data[i] == key {
			return &a.data[i]
		}
	}
	return nil
}
