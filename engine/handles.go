package engine

import (
	"go.uber.org/zap"

	"rangekit/handle"
)

// ObjectHandle is implemented by handles that refer to an object.
type ObjectHandle interface {
	handle.Validator
	ResolveObject() Object
}

// ClassHandle is implemented by handles that refer to a class.
type ClassHandle interface {
	handle.Validator
	ResolveClass() *Class
}

// WeakObjectPtr observes an object through its object table slot.
// It stops resolving once the object is destroyed. The zero value is null.
type WeakObjectPtr[T Object] struct {
	ref   ObjectRef
	table *ObjectTable
}

// MakeWeakObjectPtr returns a weak handle to obj in the default object table.
func MakeWeakObjectPtr[T Object](obj T) WeakObjectPtr[T] {
	if handle.IsNull(obj) {
		return WeakObjectPtr[T]{}
	}
	return WeakObjectPtr[T]{ref: Objects.RefOf(obj), table: Objects}
}

func (w WeakObjectPtr[T]) IsValid() bool {
	return w.ResolveObject() != nil
}

func (w WeakObjectPtr[T]) ResolveObject() Object {
	if w.table == nil {
		return nil
	}
	return w.table.Resolve(w.ref)
}

// Get returns the object, or the zero T once it is gone.
func (w WeakObjectPtr[T]) Get() T {
	return Cast[T](w.ResolveObject())
}

// SoftObjectPtr names an object by path. The object is loaded on first Get.
// The zero value is null.
type SoftObjectPtr[T Object] struct {
	path  string
	table *ObjectTable
}

// MakeSoftObjectPtr returns a soft handle to path in the default object table.
func MakeSoftObjectPtr[T Object](path string) SoftObjectPtr[T] {
	return SoftObjectPtr[T]{path: path, table: Objects}
}

func (s SoftObjectPtr[T]) Path() string {
	return s.path
}

// IsEmpty reports whether the handle names no path at all.
func (s SoftObjectPtr[T]) IsEmpty() bool {
	return s.path == "" || s.table == nil
}

// IsPending reports whether the path is loadable but not yet resident.
func (s SoftObjectPtr[T]) IsPending() bool {
	if s.IsEmpty() {
		return false
	}
	return s.table.FindObject(s.path) == nil && s.table.CanLoad(s.path)
}

// IsValid resolves the handle, loading the object if needed.
func (s SoftObjectPtr[T]) IsValid() bool {
	return !handle.IsNull(s.Get())
}

func (s SoftObjectPtr[T]) ResolveObject() Object {
	obj := s.Get()
	if handle.IsNull(obj) {
		return nil
	}
	return obj
}

// Get returns the object, loading it if it is not resident. Load failures and
// objects of the wrong type yield the zero T.
func (s SoftObjectPtr[T]) Get() T {
	obj, err := s.LoadSynchronous()
	if err != nil {
		L().Debug("soft object unresolved", zap.String("path", s.path), zap.Error(err))
	}
	return obj
}

// LoadSynchronous loads the object and casts it to T.
func (s SoftObjectPtr[T]) LoadSynchronous() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, nil
	}
	obj, err := s.table.Load(s.path)
	if err != nil {
		return zero, err
	}
	return Cast[T](obj), nil
}

// SubclassOf is a class handle restricted to T's class and its children.
// The zero value is null.
type SubclassOf[T Object] struct {
	class *Class
}

// NewSubclassOf returns a handle to c, or a null handle if c does not derive from T's class.
func NewSubclassOf[T Object](c *Class) SubclassOf[T] {
	if !c.IsChildOf(StaticClass[T]()) {
		return SubclassOf[T]{}
	}
	return SubclassOf[T]{class: c}
}

func (s SubclassOf[T]) IsValid() bool {
	return s.class != nil
}

// Get returns the class, nil for a null handle.
func (s SubclassOf[T]) Get() *Class {
	return s.class
}

func (s SubclassOf[T]) Unwrap() *Class {
	return s.class
}

func (s SubclassOf[T]) ResolveClass() *Class {
	return s.class
}

// DefaultObject returns the class default object as a T.
func (s SubclassOf[T]) DefaultObject() T {
	return Cast[T](s.class.DefaultObject())
}

// SoftClassPtr names a class that is resolved on first use.
type SoftClassPtr[T Object] struct {
	name string
}

func MakeSoftClassPtr[T Object](name string) SoftClassPtr[T] {
	return SoftClassPtr[T]{name: name}
}

func (s SoftClassPtr[T]) Path() string {
	return s.name
}

func (s SoftClassPtr[T]) IsValid() bool {
	return s.Get() != nil
}

// Get resolves the class. Unknown classes and classes not deriving from T's class yield nil.
func (s SoftClassPtr[T]) Get() *Class {
	if s.name == "" {
		return nil
	}
	c := FindClass(s.name)
	if !c.IsChildOf(StaticClass[T]()) {
		return nil
	}
	return c
}

func (s SoftClassPtr[T]) Unwrap() *Class {
	return s.Get()
}

func (s SoftClassPtr[T]) ResolveClass() *Class {
	return s.Get()
}

// DefaultObject returns the class default object as a T.
func (s SoftClassPtr[T]) DefaultObject() T {
	return Cast[T](s.Get().DefaultObject())
}
