package engine

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Class describes a registered object type.
type Class struct {
	name   string
	super  *Class
	guid   uuid.UUID
	goType reflect.Type
	newFn  func() Object

	cdoOnce sync.Once
	cdo     Object
}

// Name returns the class name. A nil class is named "None".
func (c *Class) Name() string {
	if c == nil {
		return "None"
	}
	return c.name
}

func (c *Class) String() string {
	return c.Name()
}

// Super returns the parent class, nil for a root class.
func (c *Class) Super() *Class {
	if c == nil {
		return nil
	}
	return c.super
}

func (c *Class) GUID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.guid
}

// IsChildOf reports whether c is base or derives from it.
// Both nil-safe: a nil class is a child of nothing and nothing is a child of nil.
func (c *Class) IsChildOf(base *Class) bool {
	if base == nil {
		return false
	}
	for cur := c; cur != nil; cur = cur.super {
		if cur == base {
			return true
		}
	}
	return false
}

// DefaultObject returns the class default object, constructing it on first use.
func (c *Class) DefaultObject() Object {
	if c == nil {
		return nil
	}
	c.cdoOnce.Do(func() {
		c.cdo = c.construct("Default__" + c.name)
	})
	return c.cdo
}

func (c *Class) construct(name string) Object {
	obj := c.newFn()
	b := obj.(baseHolder).objectBase()
	b.class = c
	b.name = name
	b.guid = uuid.New()
	Objects.Add(obj)
	return obj
}

type classRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*Class
	byName map[string]*Class
}

var classes = &classRegistry{
	byType: make(map[reflect.Type]*Class),
	byName: make(map[string]*Class),
}

// RegisterClass registers the Go type T as a class named name deriving from super.
// newFn must return a fresh, zero-initialized instance.
// Registering the same name or type twice is a programming error and panics.
func RegisterClass[T Object](name string, super *Class, newFn func() T) *Class {
	t := reflect.TypeFor[T]()
	c := &Class{
		name:   name,
		super:  super,
		guid:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		goType: t,
		newFn:  func() Object { return newFn() },
	}

	classes.mu.Lock()
	defer classes.mu.Unlock()
	if _, ok := classes.byName[name]; ok {
		panic(fmt.Errorf("engine: %w: %s", ErrClassRegistered, name))
	}
	if _, ok := classes.byType[t]; ok {
		panic(fmt.Errorf("engine: %w: %s", ErrClassRegistered, t))
	}
	classes.byName[name] = c
	classes.byType[t] = c
	return c
}

// StaticClass returns the class registered for T, or nil if T is not a registered object type.
func StaticClass[T any]() *Class {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	return classes.byType[reflect.TypeFor[T]()]
}

// FindClass looks a class up by name.
func FindClass(name string) *Class {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	return classes.byName[name]
}

// Classes returns every registered class, in no particular order.
func Classes() []*Class {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	out := make([]*Class, 0, len(classes.byName))
	for _, c := range classes.byName {
		out = append(out, c)
	}
	return out
}
