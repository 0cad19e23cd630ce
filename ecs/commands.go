package ecs

// Commands provides a buffer for deferred entity operations that are executed at
// the end of a frame, so systems never change the entity set they are iterating.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []Component
}

type addComponentCommand struct {
	entity    EntityId
	component Component
}

type removeComponentCommand struct {
	entity   EntityId
	compType ComponentType
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues the creation of an entity with the given components.
func (c *Commands) Spawn(components ...Component) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component Component) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType ComponentType) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies all queued commands to the manager, resetting the buffer state.
// Deletes run first; adds and removes targeting an entity deleted in the same
// flush, or an unknown entity, are dropped.
func (c *Commands) Flush(manager *EntityManager) {
	deletedEntities := make(map[EntityId]bool)

	for _, cmd := range c.deletes {
		manager.RemoveEntity(cmd)
		deletedEntities[cmd] = true
	}

	for _, cmd := range c.removes {
		if deletedEntities[cmd.entity] {
			continue
		}
		if e, ok := manager.GetEntity(cmd.entity); ok {
			manager.RemoveComponentFromEntity(e, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if deletedEntities[cmd.entity] {
			continue
		}
		if e, ok := manager.GetEntity(cmd.entity); ok {
			manager.AddComponentToEntity(e, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		e := manager.CreateEntity()
		for _, component := range cmd.components {
			manager.AddComponentToEntity(e, component)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
