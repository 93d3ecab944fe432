package handle

import "reflect"

// Validator is implemented by handles that can report whether they refer to something.
type Validator interface {
	IsValid() bool
}

// Dereferencer is implemented by handles that can produce their pointee.
// The boolean result is false when the handle is null or its referent is gone.
type Dereferencer[T any] interface {
	TryDeref() (*T, bool)
}

// Unwrapper is implemented by handles that expose their raw pointer form.
type Unwrapper[T any] interface {
	Unwrap() *T
}

// IsNull reports whether v is a null or invalid pointer-like value.
// Typed nils inside interfaces count as null. Values that are not pointer-like
// (ints, strings, structs without IsValid) are never null.
func IsNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			return true
		}
	}

	if h, ok := v.(Validator); ok {
		return !h.IsValid()
	}
	return false
}

// Deref resolves v to a *T without ever dereferencing a null handle.
// It returns (nil, false) for null values and for values that cannot
// produce a *T at all.
func Deref[T any](v any) (*T, bool) {
	if IsNull(v) {
		return nil, false
	}

	switch x := v.(type) {
	case *T:
		return x, true
	case Unwrapper[T]:
		p := x.Unwrap()
		return p, p != nil
	case Dereferencer[T]:
		return x.TryDeref()
	}
	return nil, false
}

// Truthy reports whether v is "true" in the boolean sense used by predicate-less
// aggregates: booleans are themselves, pointer-like values are true when
// non-null and every other value is true when it is not the zero value.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return !IsNull(v)
	}
	if h, ok := v.(Validator); ok {
		return h.IsValid()
	}
	return !rv.IsZero()
}
