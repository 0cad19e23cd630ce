package ecs

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

// EntityManager owns a set of entities and an index from component type to the
// entities holding that type.
//
// Components attached or detached through AddComponentToEntity and
// RemoveComponentFromEntity keep the index current. Components attached or
// detached directly on an Entity are picked up lazily: every indexed query first
// validates the index against the entities' versions and rebuilds it when they
// disagree.
//
// All methods are safe for concurrent use. Compound queries are not atomic with
// respect to concurrent writers.
type EntityManager struct {
	nextId atomic.Uint64

	entitiesMu sync.RWMutex
	entities   *intmap.Map[EntityId, *Entity]

	indexMu sync.RWMutex
	index   *componentIndex
	dirty   atomic.Bool

	rebuilds    atomic.Uint64
	validations atomic.Uint64

	capacity int
	logger   zerolog.Logger
}

// NewEntityManager creates an empty manager.
func NewEntityManager(opts ...Option) *EntityManager {
	m := &EntityManager{
		capacity: 256,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.entities = intmap.New[EntityId, *Entity](m.capacity)
	m.index = newComponentIndex(m.capacity)
	return m
}

// CreateEntity allocates a new entity with no components.
func (m *EntityManager) CreateEntity() *Entity {
	e := newEntity(EntityId(m.nextId.Add(1)))

	m.entitiesMu.Lock()
	m.entities.Put(e.id, e)
	m.entitiesMu.Unlock()

	return e
}

// RemoveEntity removes the entity and erases it from the index. Unknown ids are ignored.
func (m *EntityManager) RemoveEntity(id EntityId) {
	m.entitiesMu.Lock()
	e, ok := m.entities.Get(id)
	if ok {
		m.entities.Del(id)
	}
	m.entitiesMu.Unlock()
	if !ok {
		return
	}

	types, version := e.snapshot()

	m.indexMu.Lock()
	for _, t := range types {
		m.index.remove(t, id)
	}
	if m.index.indexedVersion(id) != version {
		// Types detached directly since the last index update are still in
		// their buckets and only a rebuild will find them.
		m.dirty.Store(true)
	}
	m.index.forget(id)
	m.indexMu.Unlock()
}

// GetEntity returns the live entity with the given id.
func (m *EntityManager) GetEntity(id EntityId) (*Entity, bool) {
	m.entitiesMu.RLock()
	defer m.entitiesMu.RUnlock()
	return m.entities.Get(id)
}

// GetAllEntities returns every live entity ordered by id.
func (m *EntityManager) GetAllEntities() []*Entity {
	m.entitiesMu.RLock()
	entities := make([]*Entity, 0, m.entities.Len())
	for e := range m.entities.Values() {
		entities = append(entities, e)
	}
	m.entitiesMu.RUnlock()

	sortEntities(entities)
	return entities
}

// GetEntityCount returns the number of live entities.
func (m *EntityManager) GetEntityCount() int {
	m.entitiesMu.RLock()
	defer m.entitiesMu.RUnlock()
	return m.entities.Len()
}

// AddComponentToEntity attaches c to e and records it in the index. If e is not
// a live entity of this manager the component is attached but not indexed.
func (m *EntityManager) AddComponentToEntity(e *Entity, c Component) {
	if e == nil || c == nil {
		return
	}
	version, ok := e.addComponent(c)
	if !ok {
		return
	}

	m.indexMu.Lock()
	defer m.indexMu.Unlock()
	if !m.owns(e) {
		return
	}
	m.index.add(c.ComponentType(), e.id)
	if !m.index.advance(e.id, version) {
		m.dirty.Store(true)
	}
}

// RemoveComponentFromEntity detaches the component of type t from e and erases
// e from that type's bucket.
func (m *EntityManager) RemoveComponentFromEntity(e *Entity, t ComponentType) {
	if e == nil {
		return
	}
	version, ok := e.removeComponent(t)
	if !ok {
		return
	}

	m.indexMu.Lock()
	defer m.indexMu.Unlock()
	if !m.owns(e) {
		return
	}
	m.index.remove(t, e.id)
	if !m.index.advance(e.id, version) {
		m.dirty.Store(true)
	}
}

// GetEntitiesWithComponent returns every entity holding a component of type t.
func (m *EntityManager) GetEntitiesWithComponent(t ComponentType) []*Entity {
	m.ensureComponentIndexUpToDate()

	m.indexMu.RLock()
	ids := m.index.members(t)
	m.indexMu.RUnlock()

	return m.resolve(ids)
}

// GetEntitiesWithComponents returns every entity holding all of types. With no
// types it returns every live entity.
func (m *EntityManager) GetEntitiesWithComponents(types ...ComponentType) []*Entity {
	if len(types) == 0 {
		return m.GetAllEntities()
	}
	if len(types) == 1 {
		return m.GetEntitiesWithComponent(types[0])
	}

	m.ensureComponentIndexUpToDate()

	m.indexMu.RLock()
	ids := m.index.intersect(types)
	m.indexMu.RUnlock()

	return m.resolve(ids)
}

// GetEntitiesForSystem returns the entities matching the system's required
// components. A nil system matches every entity.
func (m *EntityManager) GetEntitiesForSystem(s System) []*Entity {
	if s == nil {
		return m.GetAllEntities()
	}
	return m.GetEntitiesWithComponents(s.RequiredComponents()...)
}

// GetEntities returns every entity for which pred returns true. It scans all
// entities and does not use the index.
func (m *EntityManager) GetEntities(pred func(*Entity) bool) []*Entity {
	all := m.GetAllEntities()
	if pred == nil {
		return all
	}
	matched := all[:0]
	for _, e := range all {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// GetEntityCountWithComponent returns the number of entities holding type t.
func (m *EntityManager) GetEntityCountWithComponent(t ComponentType) int {
	m.ensureComponentIndexUpToDate()

	m.indexMu.RLock()
	defer m.indexMu.RUnlock()
	return m.index.bucketLen(t)
}

// RebuildComponentIndex discards the index and derives it again from the entities.
func (m *EntityManager) RebuildComponentIndex() {
	m.rebuild("explicit")
}

// MarkIndexDirty forces a full rebuild before the next indexed query.
func (m *EntityManager) MarkIndexDirty() {
	m.dirty.Store(true)
}

// IndexDirty reports whether a full rebuild is pending.
func (m *EntityManager) IndexDirty() bool {
	return m.dirty.Load()
}

func (m *EntityManager) ensureComponentIndexUpToDate() {
	if m.dirty.Load() {
		m.rebuild("dirty")
		return
	}

	entities := m.snapshotEntities()

	m.indexMu.RLock()
	if m.index.empty() && len(entities) > 0 {
		m.indexMu.RUnlock()
		m.rebuild("empty")
		return
	}

	m.validations.Add(1)
	stale := NoEntity
	for _, e := range entities {
		if e.Version() != m.index.indexedVersion(e.id) {
			stale = e.id
			break
		}
	}
	m.indexMu.RUnlock()

	if stale != NoEntity {
		m.logger.Trace().Uint64("entity", uint64(stale)).Msg("entity changed outside the manager")
		m.rebuild("stale")
	}
}

// rebuild derives a new index from a snapshot of the entity table and swaps it
// in. The index lock is held throughout so that an entity removed after the
// snapshot is erased from the new index rather than the old one.
func (m *EntityManager) rebuild(reason string) {
	m.indexMu.Lock()
	// Cleared before the snapshot so a concurrent MarkIndexDirty is not lost.
	m.dirty.Store(false)

	entities := m.snapshotEntities()
	index := newComponentIndex(len(entities))
	for _, e := range entities {
		types, version := e.snapshot()
		for _, t := range types {
			index.add(t, e.id)
		}
		index.versions.Put(e.id, version)
	}
	m.index = index
	m.indexMu.Unlock()

	m.rebuilds.Add(1)
	m.logger.Debug().
		Str("reason", reason).
		Int("entities", len(entities)).
		Int("buckets", index.buckets.Len()).
		Msg("rebuilt component index")
}

func (m *EntityManager) snapshotEntities() []*Entity {
	m.entitiesMu.RLock()
	defer m.entitiesMu.RUnlock()

	entities := make([]*Entity, 0, m.entities.Len())
	for e := range m.entities.Values() {
		entities = append(entities, e)
	}
	return entities
}

// owns reports whether e is the live entity registered under its id.
func (m *EntityManager) owns(e *Entity) bool {
	m.entitiesMu.RLock()
	defer m.entitiesMu.RUnlock()
	live, ok := m.entities.Get(e.id)
	return ok && live == e
}

func (m *EntityManager) resolve(ids []EntityId) []*Entity {
	entities := make([]*Entity, 0, len(ids))

	m.entitiesMu.RLock()
	for _, id := range ids {
		if e, ok := m.entities.Get(id); ok {
			entities = append(entities, e)
		}
	}
	m.entitiesMu.RUnlock()

	sortEntities(entities)
	return entities
}

func sortEntities(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].id < entities[j].id })
}
