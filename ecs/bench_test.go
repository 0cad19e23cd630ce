package ecs_test

import (
	"testing"

	"github.com/plus3/craftecs/ecs"
)

func BenchmarkCreateEntity(b *testing.B) {
	m := ecs.NewEntityManager()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := m.CreateEntity()
		m.AddComponentToEntity(e, &Position{X: 1.0, Y: 2.0})
		m.AddComponentToEntity(e, &Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkCreateEntityWithMultipleComponents(b *testing.B) {
	m := ecs.NewEntityManager()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := m.CreateEntity()
		m.AddComponentToEntity(e, &Position{X: 1.0, Y: 2.0})
		m.AddComponentToEntity(e, &Velocity{DX: 0.5, DY: 0.5})
		m.AddComponentToEntity(e, &Health{Current: 100, Max: 100})
		m.AddComponentToEntity(e, &Name{Value: "Entity"})
	}
}

func BenchmarkRemoveEntity(b *testing.B) {
	m := ecs.NewEntityManager()

	entities := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		e := m.CreateEntity()
		m.AddComponentToEntity(e, &Position{X: 1.0, Y: 2.0})
		m.AddComponentToEntity(e, &Velocity{DX: 0.5, DY: 0.5})
		entities[i] = e.ID()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RemoveEntity(entities[i])
	}
}

func BenchmarkGetComponent(b *testing.B) {
	m := ecs.NewEntityManager()
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Position{X: 1.0, Y: 2.0})
	m.AddComponentToEntity(e, &Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Get[*Position](e)
	}
}

func populate(m *ecs.EntityManager, n int) []*ecs.Entity {
	entities := make([]*ecs.Entity, n)
	for i := range entities {
		e := m.CreateEntity()
		m.AddComponentToEntity(e, &Position{})
		if i%2 == 0 {
			m.AddComponentToEntity(e, &Velocity{})
		}
		if i%10 == 0 {
			m.AddComponentToEntity(e, &Health{})
		}
		entities[i] = e
	}
	return entities
}

func BenchmarkGetEntitiesWithComponent(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	populate(m, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetEntitiesWithComponent(velocityType)
	}
}

func BenchmarkGetEntitiesWithComponents(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	populate(m, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetEntitiesWithComponents(positionType, velocityType, healthType)
	}
}

func BenchmarkGetEntitiesPredicate(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	populate(m, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetEntities(func(e *ecs.Entity) bool { return e.HasComponent(healthType) })
	}
}

func BenchmarkDirectAddThenQuery(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	entities := populate(m, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entities[i%len(entities)].AddComponent(&Name{})
		m.GetEntitiesWithComponent(nameType)
	}
}

func BenchmarkRebuildComponentIndex(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	populate(m, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RebuildComponentIndex()
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	m := ecs.NewEntityManager(ecs.WithInitialCapacity(10000))
	entities := populate(m, 10000)
	for _, e := range entities {
		if e.HasComponent(velocityType) {
			continue
		}
		m.AddComponentToEntity(e, &Velocity{DX: 1})
	}

	scheduler := ecs.NewScheduler(m)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(0.016)
	}
}
