package ecs_test

import "github.com/plus3/craftecs/ecs"

// Common test component types
var (
	positionType = ecs.RegisterComponentType("test.Position")
	velocityType = ecs.RegisterComponentType("test.Velocity")
	healthType   = ecs.RegisterComponentType("test.Health")
	nameType     = ecs.RegisterComponentType("test.Name")
	tagType      = ecs.RegisterComponentType("test.Tag")
)

type Position struct {
	ecs.Owned
	X, Y float32
}

func (*Position) ComponentType() ecs.ComponentType { return positionType }

type Velocity struct {
	ecs.Owned
	DX, DY float32
}

func (*Velocity) ComponentType() ecs.ComponentType { return velocityType }

type Health struct {
	ecs.Owned
	Current int
	Max     int
}

func (*Health) ComponentType() ecs.ComponentType { return healthType }

type Name struct {
	ecs.Owned
	Value string
}

func (*Name) ComponentType() ecs.ComponentType { return nameType }

type Tag struct {
	ecs.Owned
}

func (*Tag) ComponentType() ecs.ComponentType { return tagType }

func ids(entities []*ecs.Entity) []ecs.EntityId {
	out := make([]ecs.EntityId, len(entities))
	for i, e := range entities {
		out[i] = e.ID()
	}
	return out
}
