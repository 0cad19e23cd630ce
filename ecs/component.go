package ecs

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// ComponentType is the interned identifier of a component kind. Identifiers are
// handed out by RegisterComponentType and are stable for the life of the process.
type ComponentType uint16

// NoComponentType is never assigned and never matches an entity.
const NoComponentType ComponentType = 0

// MaxComponentTypes is the number of distinct component types that can be registered.
const MaxComponentTypes = math.MaxUint16

var componentTypes = struct {
	sync.RWMutex
	byName map[string]ComponentType
	names  []string
}{
	byName: make(map[string]ComponentType),
	names:  []string{""},
}

// RegisterComponentType interns name and returns its identifier. Registering the
// same name again returns the identifier assigned the first time.
func RegisterComponentType(name string) ComponentType {
	componentTypes.RLock()
	t, ok := componentTypes.byName[name]
	componentTypes.RUnlock()
	if ok {
		return t
	}

	componentTypes.Lock()
	defer componentTypes.Unlock()

	if t, ok := componentTypes.byName[name]; ok {
		return t
	}
	if len(componentTypes.names) > MaxComponentTypes {
		panic(fmt.Sprintf("ecs: component type limit exceeded registering %q", name))
	}

	t = ComponentType(len(componentTypes.names))
	componentTypes.byName[name] = t
	componentTypes.names = append(componentTypes.names, name)
	return t
}

// ComponentTypeByName looks up a previously registered type.
func ComponentTypeByName(name string) (ComponentType, bool) {
	componentTypes.RLock()
	defer componentTypes.RUnlock()
	t, ok := componentTypes.byName[name]
	return t, ok
}

// RegisteredComponentTypes returns every registered type in registration order.
func RegisteredComponentTypes() []ComponentType {
	componentTypes.RLock()
	defer componentTypes.RUnlock()

	types := make([]ComponentType, 0, len(componentTypes.names)-1)
	for i := 1; i < len(componentTypes.names); i++ {
		types = append(types, ComponentType(i))
	}
	return types
}

func (t ComponentType) String() string {
	componentTypes.RLock()
	defer componentTypes.RUnlock()
	if t != NoComponentType && int(t) < len(componentTypes.names) {
		return componentTypes.names[t]
	}
	return fmt.Sprintf("ComponentType(%d)", uint16(t))
}

// Component is a unit of typed data attached to at most one entity.
//
// ComponentType must not dereference its receiver, so that it can be called on a
// nil pointer of the implementing type.
type Component interface {
	ComponentType() ComponentType
	Owner() EntityId
	SetOwner(id EntityId)
}

// Owned implements the owner back-reference half of Component and is meant to
// be embedded in component structs.
type Owned struct {
	owner EntityId
}

// Owner returns the id of the entity the component is attached to, or NoEntity.
func (o *Owned) Owner() EntityId {
	return o.owner
}

// SetOwner is called by Entity when the component is attached.
func (o *Owned) SetOwner(id EntityId) {
	o.owner = id
}

// TypeOf returns the component type of T.
func TypeOf[T Component]() ComponentType {
	var zero T
	return zero.ComponentType()
}

// Get returns the component of type T attached to e.
func Get[T Component](e *Entity) (T, bool) {
	var zero T
	c, ok := e.GetComponent(zero.ComponentType())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// Has reports whether e has a component of type T.
func Has[T Component](e *Entity) bool {
	return e.HasComponent(TypeOf[T]())
}

func sortComponentTypes(types []ComponentType) {
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
}
