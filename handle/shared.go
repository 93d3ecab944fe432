package handle

import "weak"

// Shared is a reference-counted handle. The count is the garbage collector's;
// Shared only adds the null/validity vocabulary on top of a plain pointer.
// The zero value is a null handle.
type Shared[T any] struct {
	p *T
}

// MakeShared allocates a copy of v and returns a handle to it.
func MakeShared[T any](v T) Shared[T] {
	return Shared[T]{p: &v}
}

// NewShared wraps an existing pointer. A nil pointer yields a null handle.
func NewShared[T any](p *T) Shared[T] {
	return Shared[T]{p: p}
}

func (s Shared[T]) IsValid() bool {
	return s.p != nil
}

// Get returns the raw pointer, nil for a null handle.
func (s Shared[T]) Get() *T {
	return s.p
}

func (s Shared[T]) Unwrap() *T {
	return s.p
}

func (s Shared[T]) TryDeref() (*T, bool) {
	return s.p, s.p != nil
}

// ToWeak returns a weak handle observing the same referent.
func (s Shared[T]) ToWeak() Weak[T] {
	if s.p == nil {
		return Weak[T]{}
	}
	return Weak[T]{wp: weak.Make(s.p)}
}

// Weak observes a referent without keeping it alive.
// The zero value is a null handle.
type Weak[T any] struct {
	wp weak.Pointer[T]
}

// MakeWeak returns a weak handle to p.
func MakeWeak[T any](p *T) Weak[T] {
	if p == nil {
		return Weak[T]{}
	}
	return Weak[T]{wp: weak.Make(p)}
}

// IsValid reports whether the referent is still reachable. A true result does
// not keep it alive; use Pin to obtain a strong reference.
func (w Weak[T]) IsValid() bool {
	return w.wp.Value() != nil
}

// Pin returns a strong handle to the referent, or a null handle if it is gone.
func (w Weak[T]) Pin() Shared[T] {
	return Shared[T]{p: w.wp.Value()}
}

// Unwrap pins the handle and returns the strong pointer.
func (w Weak[T]) Unwrap() *T {
	return w.wp.Value()
}

func (w Weak[T]) TryDeref() (*T, bool) {
	p := w.wp.Value()
	return p, p != nil
}
