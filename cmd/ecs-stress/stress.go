package main

import (
	"math/rand"

	"github.com/plus3/craftecs/ecs"
)

// Mutator applies random structural changes to a manager. A directRatio share of
// attaches and detaches bypass the manager and go straight to the entity.
type Mutator struct {
	manager     *ecs.EntityManager
	rng         *rand.Rand
	directRatio float64
	live        []ecs.EntityId

	Direct  int64
	Managed int64
	Spawned int64
	Removed int64
}

func NewMutator(manager *ecs.EntityManager, rng *rand.Rand, directRatio float64) *Mutator {
	return &Mutator{manager: manager, rng: rng, directRatio: directRatio}
}

// Spawn creates an entity with numComponents distinct random components.
func (mu *Mutator) Spawn(numComponents int) *ecs.Entity {
	e := mu.manager.CreateEntity()
	for _, i := range mu.rng.Perm(componentCount)[:min(numComponents, componentCount)] {
		mu.attach(e, newComponent(i))
	}
	mu.live = append(mu.live, e.ID())
	mu.Spawned++
	return e
}

// Step applies n random mutations.
func (mu *Mutator) Step(n int) {
	for i := 0; i < n; i++ {
		if len(mu.live) == 0 {
			mu.Spawn(mu.rng.Intn(5) + 1)
			continue
		}

		slot := mu.rng.Intn(len(mu.live))
		e, ok := mu.manager.GetEntity(mu.live[slot])
		if !ok {
			mu.forget(slot)
			continue
		}

		switch r := mu.rng.Intn(10); {
		case r < 5:
			mu.attach(e, newComponent(mu.rng.Intn(componentCount)))
		case r < 9:
			mu.detach(e, componentTypes[mu.rng.Intn(componentCount)])
		default:
			mu.manager.RemoveEntity(e.ID())
			mu.forget(slot)
			mu.Removed++
			mu.Spawn(mu.rng.Intn(5) + 1)
		}
	}
}

func (mu *Mutator) attach(e *ecs.Entity, c ecs.Component) {
	if mu.rng.Float64() < mu.directRatio {
		e.AddComponent(c)
		mu.Direct++
		return
	}
	mu.manager.AddComponentToEntity(e, c)
	mu.Managed++
}

func (mu *Mutator) detach(e *ecs.Entity, t ecs.ComponentType) {
	if mu.rng.Float64() < mu.directRatio {
		e.RemoveComponent(t)
		mu.Direct++
		return
	}
	mu.manager.RemoveComponentFromEntity(e, t)
	mu.Managed++
}

func (mu *Mutator) forget(slot int) {
	last := len(mu.live) - 1
	mu.live[slot] = mu.live[last]
	mu.live = mu.live[:last]
}

// CheckIndex compares every indexed query with a full scan and returns the
// number of component types whose results disagree.
func CheckIndex(manager *ecs.EntityManager) int {
	mismatches := 0
	for _, t := range componentTypes {
		indexed := manager.GetEntitiesWithComponent(t)
		scanned := manager.GetEntities(func(e *ecs.Entity) bool { return e.HasComponent(t) })
		if len(indexed) != len(scanned) {
			mismatches++
			continue
		}
		for i := range indexed {
			if !indexed[i].Equal(scanned[i]) {
				mismatches++
				break
			}
		}
	}
	return mismatches
}
