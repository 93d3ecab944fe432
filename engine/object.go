package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Object is implemented by every engine object. Object types embed ObjectBase.
type Object interface {
	Class() *Class
	Name() string
	GUID() uuid.UUID
}

type baseHolder interface {
	objectBase() *ObjectBase
}

// ObjectBase carries the identity shared by all objects.
type ObjectBase struct {
	class *Class
	name  string
	guid  uuid.UUID
}

func (o *ObjectBase) objectBase() *ObjectBase {
	return o
}

func (o *ObjectBase) Class() *Class {
	return o.class
}

func (o *ObjectBase) Name() string {
	return o.name
}

func (o *ObjectBase) GUID() uuid.UUID {
	return o.guid
}

func (o *ObjectBase) String() string {
	return o.class.Name() + " " + o.name
}

// Package groups objects under a common path.
type Package struct {
	ObjectBase
}

// MetaData holds loose key/value data attached to other objects.
type MetaData struct {
	ObjectBase
	values map[string]string
}

func (m *MetaData) SetValue(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

func (m *MetaData) Value(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Built-in classes.
var (
	ObjectClass   = RegisterClass("Object", nil, func() *ObjectBase { return &ObjectBase{} })
	PackageClass  = RegisterClass("Package", ObjectClass, func() *Package { return &Package{} })
	MetaDataClass = RegisterClass("MetaData", ObjectClass, func() *MetaData { return &MetaData{} })
)

// NewObject constructs a T, registers it in the default object table and returns it.
// T must have been registered with RegisterClass.
func NewObject[T Object](name string) T {
	c := StaticClass[T]()
	if c == nil {
		panic(fmt.Errorf("engine: %w: %T", ErrClassUnknown, *new(T)))
	}
	return c.construct(name).(T)
}

// NewObjectOfClass constructs an object of a class known only at run time.
func NewObjectOfClass(c *Class, name string) (Object, error) {
	if c == nil {
		return nil, ErrClassUnknown
	}
	return c.construct(name), nil
}

// GetDefault returns the default object of T's class.
func GetDefault[T Object]() T {
	return Cast[T](StaticClass[T]().DefaultObject())
}
