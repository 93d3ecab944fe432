package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"rangekit/handle"
)

// ObjectRef identifies an object table slot. A ref resolves only while the
// slot's serial number matches, so refs to destroyed objects never resolve to
// whatever reuses the slot.
type ObjectRef struct {
	index  int
	serial uint64
}

// IsZero reports whether r was never assigned.
func (r ObjectRef) IsZero() bool {
	return r.serial == 0
}

type slot struct {
	obj    Object
	serial uint64
}

// Loader constructs the object stored at a path.
type Loader func(path string) (Object, error)

// ObjectTable tracks live objects for weak and soft handles.
type ObjectTable struct {
	mu         sync.RWMutex
	slots      []slot
	free       []int
	index      map[Object]int
	byPath     map[string]Object
	paths      map[Object][]string
	loaders    map[string]Loader
	nextSerial uint64
}

// Objects is the default object table. NewObject and class default objects register here.
var Objects = NewObjectTable()

func NewObjectTable() *ObjectTable {
	return &ObjectTable{
		index:   make(map[Object]int),
		byPath:  make(map[string]Object),
		paths:   make(map[Object][]string),
		loaders: make(map[string]Loader),
	}
}

// Add registers obj and returns its ref. Adding an object twice returns the same ref.
// The object's name doubles as its path unless the path is already taken.
func (t *ObjectTable) Add(obj Object) ObjectRef {
	if handle.IsNull(obj) {
		return ObjectRef{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addLocked(obj, obj.Name())
}

// AddAt registers obj under an explicit path.
func (t *ObjectTable) AddAt(path string, obj Object) (ObjectRef, error) {
	if handle.IsNull(obj) {
		return ObjectRef{}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if other, ok := t.byPath[path]; ok && other != obj {
		return ObjectRef{}, fmt.Errorf("%w: %s", ErrPathInUse, path)
	}
	return t.addLocked(obj, path), nil
}

func (t *ObjectTable) addLocked(obj Object, path string) ObjectRef {
	if i, ok := t.index[obj]; ok {
		t.bindPathLocked(obj, path)
		return ObjectRef{index: i, serial: t.slots[i].serial}
	}

	t.nextSerial++
	s := slot{obj: obj, serial: t.nextSerial}

	var i int
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[i] = s
	} else {
		i = len(t.slots)
		t.slots = append(t.slots, s)
	}
	t.index[obj] = i
	t.bindPathLocked(obj, path)
	return ObjectRef{index: i, serial: s.serial}
}

// bindPathLocked makes obj findable at path unless the path belongs to another object.
// An object may be reachable through several paths, e.g. its name and the path it was loaded from.
func (t *ObjectTable) bindPathLocked(obj Object, path string) {
	if path == "" {
		return
	}
	if _, taken := t.byPath[path]; taken {
		return
	}
	t.byPath[path] = obj
	t.paths[obj] = append(t.paths[obj], path)
}

// RefOf returns obj's ref, registering it first if needed.
func (t *ObjectTable) RefOf(obj Object) ObjectRef {
	return t.Add(obj)
}

// Resolve returns the object behind r, or nil if it has been destroyed.
func (t *ObjectTable) Resolve(r ObjectRef) Object {
	if r.IsZero() {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if r.index < 0 || r.index >= len(t.slots) {
		return nil
	}
	s := t.slots[r.index]
	if s.serial != r.serial {
		return nil
	}
	return s.obj
}

// Destroy removes obj from the table. Outstanding refs stop resolving.
func (t *ObjectTable) Destroy(obj Object) {
	if handle.IsNull(obj) {
		return
	}

	t.mu.Lock()
	i, ok := t.index[obj]
	if !ok {
		t.mu.Unlock()
		return
	}
	t.slots[i] = slot{}
	t.free = append(t.free, i)
	delete(t.index, obj)
	for _, path := range t.paths[obj] {
		delete(t.byPath, path)
	}
	delete(t.paths, obj)
	t.mu.Unlock()

	L().Debug("object destroyed", zap.String("object", obj.Name()), zap.Stringer("class", obj.Class()))
}

// Num returns the number of live objects.
func (t *ObjectTable) Num() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.index)
}

// FindObject returns the resident object at path without loading it.
func (t *ObjectTable) FindObject(path string) Object {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byPath[path]
}

// RegisterLoader installs the loader used to bring path into memory.
func (t *ObjectTable) RegisterLoader(path string, l Loader) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaders[path] = l
}

// CanLoad reports whether path is resident or has a loader.
func (t *ObjectTable) CanLoad(path string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.byPath[path]; ok {
		return true
	}
	_, ok := t.loaders[path]
	return ok
}

// Load returns the object at path, running its loader if it is not resident.
func (t *ObjectTable) Load(path string) (Object, error) {
	if obj := t.FindObject(path); obj != nil {
		return obj, nil
	}

	t.mu.RLock()
	l, ok := t.loaders[path]
	t.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoLoader, path)
	}

	obj, err := l(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if handle.IsNull(obj) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotCreated, path)
	}

	t.mu.Lock()
	if resident, ok := t.byPath[path]; ok {
		// Another caller loaded it first.
		t.mu.Unlock()
		return resident, nil
	}
	t.addLocked(obj, path)
	t.mu.Unlock()

	L().Debug("object loaded", zap.String("path", path), zap.Stringer("class", obj.Class()))
	return obj, nil
}
