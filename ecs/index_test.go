package ecs_test

import (
	"math/rand"
	"testing"

	"github.com/plus3/craftecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexScenario(t *testing.T) {
	m := ecs.NewEntityManager()

	e1 := m.CreateEntity()
	m.AddComponentToEntity(e1, &Position{})
	m.AddComponentToEntity(e1, &Velocity{})

	e2 := m.CreateEntity()
	m.AddComponentToEntity(e2, &Position{})

	e3 := m.CreateEntity()
	m.AddComponentToEntity(e3, &Position{})
	m.AddComponentToEntity(e3, &Velocity{})

	assert.Equal(t, []ecs.EntityId{1, 3}, ids(m.GetEntitiesWithComponents(positionType, velocityType)))
	assert.Equal(t, 3, m.GetEntityCountWithComponent(positionType))
	assert.Equal(t, 2, m.GetEntityCountWithComponent(velocityType))
}

func TestIndexSelfHealsDirectAdd(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Position{})
	require.Len(t, m.GetEntitiesWithComponent(positionType), 1)

	e.AddComponent(&Health{Current: 10})

	assert.Equal(t, []ecs.EntityId{e.ID()}, ids(m.GetEntitiesWithComponent(healthType)))
	assert.Equal(t, 1, m.GetEntityCountWithComponent(healthType))
}

func TestIndexSelfHealsDirectRemove(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Position{})
	m.AddComponentToEntity(e, &Velocity{})
	require.Len(t, m.GetEntitiesWithComponents(positionType, velocityType), 1)

	e.RemoveComponent(velocityType)

	assert.Empty(t, m.GetEntitiesWithComponent(velocityType))
	assert.Empty(t, m.GetEntitiesWithComponents(positionType, velocityType))
	assert.Len(t, m.GetEntitiesWithComponent(positionType), 1)
}

func TestIndexEmptyWhileEntitiesExist(t *testing.T) {
	m := ecs.NewEntityManager()
	for i := 0; i < 3; i++ {
		m.CreateEntity().AddComponent(&Tag{})
	}

	assert.Len(t, m.GetEntitiesWithComponent(tagType), 3)
	assert.Equal(t, uint64(1), m.CollectStats().Rebuilds)
}

func TestMixedPathsAfterDirectMutation(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Position{})
	e.AddComponent(&Velocity{})

	// The manager notices the skipped version and defers to a rebuild.
	m.AddComponentToEntity(e, &Health{})
	assert.True(t, m.IndexDirty())

	assert.Len(t, m.GetEntitiesWithComponents(positionType, velocityType, healthType), 1)
	assert.False(t, m.IndexDirty())
}

func TestRebuildComponentIndex(t *testing.T) {
	m := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(7))
	types := []ecs.ComponentType{positionType, velocityType, healthType, nameType}
	makers := map[ecs.ComponentType]func() ecs.Component{
		positionType: func() ecs.Component { return &Position{} },
		velocityType: func() ecs.Component { return &Velocity{} },
		healthType:   func() ecs.Component { return &Health{} },
		nameType:     func() ecs.Component { return &Name{} },
	}

	for i := 0; i < 200; i++ {
		e := m.CreateEntity()
		for _, ct := range types {
			if rng.Intn(2) == 0 {
				continue
			}
			if rng.Intn(2) == 0 {
				e.AddComponent(makers[ct]())
			} else {
				m.AddComponentToEntity(e, makers[ct]())
			}
		}
		if rng.Intn(5) == 0 {
			e.RemoveComponent(types[rng.Intn(len(types))])
		}
	}

	m.RebuildComponentIndex()

	for _, ct := range types {
		expected := m.GetEntities(func(e *ecs.Entity) bool { return e.HasComponent(ct) })
		got := m.GetEntitiesWithComponent(ct)
		assert.Equal(t, ids(expected), ids(got), "bucket %s", ct)
		for _, e := range got {
			assert.True(t, e.HasComponent(ct))
		}
	}
}

func TestGetEntitiesWithComponents(t *testing.T) {
	m := ecs.NewEntityManager()

	a := m.CreateEntity()
	m.AddComponentToEntity(a, &Position{})
	m.AddComponentToEntity(a, &Velocity{})
	m.AddComponentToEntity(a, &Health{})

	b := m.CreateEntity()
	m.AddComponentToEntity(b, &Position{})
	m.AddComponentToEntity(b, &Health{})

	c := m.CreateEntity()
	m.AddComponentToEntity(c, &Velocity{})

	m.CreateEntity()

	tests := []struct {
		name  string
		types []ecs.ComponentType
		want  []ecs.EntityId
	}{
		{"no types returns all", nil, []ecs.EntityId{1, 2, 3, 4}},
		{"single type", []ecs.ComponentType{velocityType}, []ecs.EntityId{1, 3}},
		{"pair", []ecs.ComponentType{positionType, healthType}, []ecs.EntityId{1, 2}},
		{"triple", []ecs.ComponentType{positionType, velocityType, healthType}, []ecs.EntityId{1}},
		{"order does not matter", []ecs.ComponentType{healthType, velocityType, positionType}, []ecs.EntityId{1}},
		{"duplicates", []ecs.ComponentType{positionType, positionType}, []ecs.EntityId{1, 2}},
		{"type nobody has", []ecs.ComponentType{positionType, nameType}, []ecs.EntityId{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(m.GetEntitiesWithComponents(tt.types...)))
		})
	}
}

type requireSystem struct {
	required []ecs.ComponentType
	seen     []*ecs.Entity
}

func (s *requireSystem) RequiredComponents() []ecs.ComponentType { return s.required }
func (s *requireSystem) Update(entities []*ecs.Entity) { s.seen = entities }

func TestGetEntitiesForSystem(t *testing.T) {
	m := ecs.NewEntityManager()
	a := m.CreateEntity()
	m.AddComponentToEntity(a, &Position{})
	m.AddComponentToEntity(a, &Velocity{})
	b := m.CreateEntity()
	m.AddComponentToEntity(b, &Position{})

	movers := &requireSystem{required: []ecs.ComponentType{positionType, velocityType}}
	assert.Equal(t, []ecs.EntityId{a.ID()}, ids(m.GetEntitiesForSystem(movers)))

	everything := &requireSystem{}
	assert.Equal(t, []ecs.EntityId{a.ID(), b.ID()}, ids(m.GetEntitiesForSystem(everything)))

	var none ecs.System
	require.NotPanics(t, func() {
		assert.Equal(t, []ecs.EntityId{a.ID(), b.ID()}, ids(m.GetEntitiesForSystem(none)))
	})
}

func TestIndexStats(t *testing.T) {
	m := ecs.NewEntityManager()
	e := m.CreateEntity()
	m.AddComponentToEntity(e, &Position{})
	m.AddComponentToEntity(e, &Velocity{})
	m.AddComponentToEntity(m.CreateEntity(), &Position{})

	m.GetEntitiesWithComponent(positionType)
	m.GetEntitiesWithComponent(velocityType)

	stats := m.CollectStats()
	assert.Equal(t, 2, stats.EntityCount)
	assert.Equal(t, uint64(0), stats.Rebuilds)
	assert.Equal(t, uint64(2), stats.Validations)
	assert.False(t, stats.Dirty)
	assert.Equal(t, []ecs.BucketStats{
		{Type: positionType, Name: "test.Position", EntityCount: 2},
		{Type: velocityType, Name: "test.Velocity", EntityCount: 1},
	}, stats.Buckets)

	m.MarkIndexDirty()
	assert.True(t, m.CollectStats().Dirty)
	m.GetEntitiesWithComponent(positionType)

	stats = m.CollectStats()
	assert.Equal(t, uint64(1), stats.Rebuilds)
	assert.False(t, stats.Dirty)
}
