package ecs

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/kamstrup/intmap"
)

// EntityId identifies an entity within the EntityManager that created it.
// Ids start at 1 and are never reused.
type EntityId uint64

// NoEntity is the zero id. It never refers to a live entity.
const NoEntity EntityId = 0

// Entity is an id plus at most one component per component type.
//
// Components may be attached and detached on the entity directly, without going
// through the EntityManager. The manager detects these changes through the
// entity's structural version and repairs its index on the next query.
type Entity struct {
	id EntityId

	mu         sync.RWMutex
	components *intmap.Map[ComponentType, Component]
	version    uint64
}

func newEntity(id EntityId) *Entity {
	return &Entity{
		id:         id,
		components: intmap.New[ComponentType, Component](4),
	}
}

// ID returns the entity's id.
func (e *Entity) ID() EntityId {
	return e.id
}

// AddComponent attaches c, replacing any component of the same type, and stamps
// c with the entity's id. A nil component, including a nil pointer of a
// component type, is ignored.
func (e *Entity) AddComponent(c Component) {
	e.addComponent(c)
}

func (e *Entity) addComponent(c Component) (uint64, bool) {
	if isNilComponent(c) {
		return 0, false
	}
	t := c.ComponentType()
	if t == NoComponentType {
		return 0, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if prev, ok := e.components.Get(t); ok {
		e.release(prev)
	}
	c.SetOwner(e.id)
	e.components.Put(t, c)
	e.version++
	return e.version, true
}

// GetComponent returns the component of type t, or false if none is attached.
func (e *Entity) GetComponent(t ComponentType) (Component, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.components.Get(t)
}

// HasComponent reports whether a component of type t is attached.
func (e *Entity) HasComponent(t ComponentType) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.components.Has(t)
}

// RemoveComponent detaches the component of type t. It is a no-op if none is attached.
func (e *Entity) RemoveComponent(t ComponentType) {
	e.removeComponent(t)
}

func (e *Entity) removeComponent(t ComponentType) (uint64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.components.Get(t)
	if !ok {
		return e.version, false
	}
	e.components.Del(t)
	e.release(c)
	e.version++
	return e.version, true
}

// release clears c's owner unless it has since been attached to another entity.
func (e *Entity) release(c Component) {
	if c.Owner() == e.id {
		c.SetOwner(NoEntity)
	}
}

func isNilComponent(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.components.Len()
}

// ComponentTypes returns the types of all attached components in ascending order.
func (e *Entity) ComponentTypes() []ComponentType {
	types, _ := e.snapshot()
	return types
}

// Version returns a counter that changes every time a component is attached or
// detached.
func (e *Entity) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version
}

// snapshot returns the attached types and the version they correspond to.
func (e *Entity) snapshot() ([]ComponentType, uint64) {
	e.mu.RLock()
	types := make([]ComponentType, 0, e.components.Len())
	for t := range e.components.Keys() {
		types = append(types, t)
	}
	version := e.version
	e.mu.RUnlock()

	sortComponentTypes(types)
	return types, version
}

// Equal reports whether e and other have the same id.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.id == other.id
}

func (e *Entity) String() string {
	types := e.ComponentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return fmt.Sprintf("Entity(%d)[%s]", e.id, strings.Join(names, ", "))
}
