package engine

import (
	"fmt"
	"reflect"
	"unsafe"

	"go.uber.org/zap"

	"rangekit/handle"
)

// CheckMode selects how CastChecked treats nil input.
type CheckMode int

const (
	// NullChecked treats nil input as a failed cast.
	NullChecked CheckMode = iota
	// NullAllowed passes nil input through as nil output.
	NullAllowed
)

var objectType = reflect.TypeFor[Object]()

// IsA reports whether obj is non-nil and its class is class or derives from it.
func IsA(obj Object, class *Class) bool {
	if handle.IsNull(obj) {
		return false
	}
	return obj.Class().IsChildOf(class)
}

// Cast converts obj to T if its dynamic type allows it. Nil input and
// mismatches yield the zero value of T, so T is normally a pointer or
// interface type.
func Cast[T any](obj Object) T {
	t, _ := TryCast[T](obj)
	return t
}

// TryCast is Cast with an explicit success flag.
func TryCast[T any](obj Object) (T, bool) {
	var zero T
	if handle.IsNull(obj) {
		return zero, false
	}
	if t, ok := obj.(T); ok {
		return t, true
	}

	// T may be the Go type of a base class embedded in obj.
	c := StaticClass[T]()
	if c == nil || !obj.Class().IsChildOf(c) {
		return zero, false
	}
	return upcast[T](obj)
}

// ExactCast is Cast restricted to objects whose class is exactly T's class.
func ExactCast[T any](obj Object) T {
	var zero T
	if handle.IsNull(obj) {
		return zero
	}
	c := StaticClass[T]()
	if c == nil || obj.Class() != c {
		return zero
	}
	return Cast[T](obj)
}

// CastChecked is Cast for callers that know the cast must succeed.
// A mismatch, or nil input under NullChecked, is fatal: it is logged at panic
// level and the calling goroutine panics.
func CastChecked[T any](obj Object, mode CheckMode) T {
	var zero T
	if handle.IsNull(obj) {
		if mode == NullAllowed {
			return zero
		}
		fatalCast[T](nil)
	}

	t, ok := TryCast[T](obj)
	if !ok {
		fatalCast[T](obj)
	}
	return t
}

func fatalCast[T any](obj Object) {
	to := reflect.TypeFor[T]().String()
	err := fmt.Errorf("engine: %w: %s to %s", ErrCastFailed, describe(obj), to)
	L().Panic("checked cast failed",
		zap.String("from", describe(obj)),
		zap.String("to", to),
		zap.Error(err),
	)
	// Reached only when the logger's panic hook was overridden.
	panic(err)
}

func describe(obj Object) string {
	if handle.IsNull(obj) {
		return "nil"
	}
	return obj.Class().Name() + " " + obj.Name()
}

// upcast walks obj's embedded structs looking for a field of type T.
func upcast[T any](obj Object) (T, bool) {
	var zero T
	want := reflect.TypeFor[T]()

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		if v.Type() == want {
			t, ok := v.Interface().(T)
			return t, ok
		}

		e := v.Elem()
		if e.Kind() != reflect.Struct {
			return zero, false
		}

		next := reflect.Value{}
		for i := range e.NumField() {
			f := e.Type().Field(i)
			if !f.Anonymous {
				continue
			}
			// Rebuild the field from its address so unexported bases stay usable via Interface.
			fv := reflect.NewAt(f.Type, unsafe.Pointer(e.Field(i).UnsafeAddr())).Elem()
			switch {
			case fv.Kind() == reflect.Struct && fv.Addr().Type().Implements(objectType):
				next = fv.Addr()
			case fv.Kind() == reflect.Pointer && fv.Type().Implements(objectType):
				next = fv
			default:
				continue
			}
			break
		}
		if !next.IsValid() {
			return zero, false
		}
		v = next
	}
	return zero, false
}

// ResolveObject turns a pointer-like value into the object it refers to, or nil.
// It accepts Object values, object handles and generic handles (such as
// handle.Shared) wrapping an object.
func ResolveObject(v any) Object {
	if handle.IsNull(v) {
		return nil
	}

	switch x := v.(type) {
	case ObjectHandle:
		return x.ResolveObject()
	case Object:
		return x
	}

	// Generic handles unwrap to a pointer that may itself be an object.
	if m := reflect.ValueOf(v).MethodByName("Unwrap"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).Implements(objectType) {
			out := m.Call(nil)[0]
			if obj, ok := out.Interface().(Object); ok && !handle.IsNull(obj) {
				return obj
			}
		}
	}
	return nil
}

// ResolveClass turns a class-like value into the class it refers to, or nil.
// It accepts *Class, class handles and generic handles over Class.
func ResolveClass(v any) *Class {
	if handle.IsNull(v) {
		return nil
	}

	switch x := v.(type) {
	case *Class:
		return x
	case ClassHandle:
		return x.ResolveClass()
	}
	if c, ok := handle.Deref[Class](v); ok {
		return c
	}
	return nil
}
