package craft

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/plus3/craftecs/ecs"
)

// PlayerHalfExtents is the collision box of a standing player.
var PlayerHalfExtents = mgl64.Vec3{0.3, 0.9, 0.3}

// SpawnPlayer creates a player entity at pos with an empty inventory.
func SpawnPlayer(m *ecs.EntityManager, name string, pos mgl64.Vec3) *ecs.Entity {
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Player{UUID: uuid.New(), Name: name})
	m.AddComponentToEntity(e, &Position{Vec: pos})
	m.AddComponentToEntity(e, &Velocity{})
	m.AddComponentToEntity(e, &Collider{HalfExtents: PlayerHalfExtents})
	m.AddComponentToEntity(e, &Inventory{})
	return e
}

// FindPlayer returns the player entity with the given UUID.
func FindPlayer(m *ecs.EntityManager, id uuid.UUID) (*ecs.Entity, bool) {
	found := m.GetEntities(func(e *ecs.Entity) bool {
		p, ok := ecs.Get[*Player](e)
		return ok && p.UUID == id
	})
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// Players returns every entity with a Player component.
func Players(m *ecs.EntityManager) []*ecs.Entity {
	return m.GetEntitiesWithComponent(PlayerType)
}
