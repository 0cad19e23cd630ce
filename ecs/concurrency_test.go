package ecs_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/plus3/craftecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestConcurrentMutationAndQuery(t *testing.T) {
	m := ecs.NewEntityManager()
	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < perWorker; i++ {
				e := m.CreateEntity()
				switch rng.Intn(4) {
				case 0:
					e.AddComponent(&Position{})
				case 1:
					m.AddComponentToEntity(e, &Position{})
					m.AddComponentToEntity(e, &Velocity{})
				case 2:
					m.AddComponentToEntity(e, &Velocity{})
					e.RemoveComponent(velocityType)
				case 3:
					m.AddComponentToEntity(e, &Position{})
					m.RemoveEntity(e.ID())
				}
				if i%10 == 0 {
					m.GetEntitiesWithComponents(positionType, velocityType)
					m.GetEntityCountWithComponent(velocityType)
				}
			}
		}(int64(w))
	}
	wg.Wait()

	// Once writers are quiet the next query observes everything.
	for _, ct := range []ecs.ComponentType{positionType, velocityType} {
		expected := m.GetEntities(func(e *ecs.Entity) bool { return e.HasComponent(ct) })
		assert.Equal(t, ids(expected), ids(m.GetEntitiesWithComponent(ct)))
		assert.Equal(t, len(expected), m.GetEntityCountWithComponent(ct))
	}

	for _, e := range m.GetAllEntities() {
		assert.NotEqual(t, ecs.NoEntity, e.ID())
	}
}

func TestConcurrentCreateEntityIdsAreUnique(t *testing.T) {
	m := ecs.NewEntityManager()
	const n = 1000

	created := make(chan ecs.EntityId, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created <- m.CreateEntity().ID()
		}()
	}
	wg.Wait()
	close(created)

	seen := make(map[ecs.EntityId]bool, n)
	for id := range created {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, m.GetEntityCount())
}
