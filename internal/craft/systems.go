package craft

import (
	"github.com/plus3/craftecs/ecs"
)

const (
	// Gravity is the downward acceleration in blocks per second squared.
	Gravity = 32.0
	// Drag is the fraction of velocity lost per second.
	Drag = 0.4
	// GroundLevel is the height of the flat world floor.
	GroundLevel = 64.0
)

// MovementSystem integrates positions by velocity.
type MovementSystem struct {
	Frame *ecs.UpdateFrame
}

func (s *MovementSystem) RequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{PositionType, VelocityType}
}

func (s *MovementSystem) Update(entities []*ecs.Entity) {
	dt := s.Frame.DeltaTime
	for _, e := range entities {
		pos, ok := ecs.Get[*Position](e)
		if !ok {
			continue
		}
		vel, ok := ecs.Get[*Velocity](e)
		if !ok {
			continue
		}
		pos.Vec = pos.Vec.Add(vel.Vec.Mul(dt))
	}
}

// PhysicsSystem applies gravity to airborne colliders and drag to everything
// that moves.
type PhysicsSystem struct {
	Frame *ecs.UpdateFrame
}

func (s *PhysicsSystem) RequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{VelocityType, ColliderType}
}

func (s *PhysicsSystem) Update(entities []*ecs.Entity) {
	dt := s.Frame.DeltaTime
	damping := 1 - Drag*dt
	if damping < 0 {
		damping = 0
	}

	for _, e := range entities {
		vel, ok := ecs.Get[*Velocity](e)
		if !ok {
			continue
		}
		col, ok := ecs.Get[*Collider](e)
		if !ok {
			continue
		}
		if !col.OnGround {
			vel.Vec[1] -= Gravity * dt
		}
		vel.Vec = vel.Vec.Mul(damping)
	}
}

// CollisionSystem keeps colliders above the ground.
type CollisionSystem struct {
	// Landed counts colliders that touched the ground during the last update.
	Landed int
}

func (s *CollisionSystem) RequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{PositionType, ColliderType}
}

func (s *CollisionSystem) Update(entities []*ecs.Entity) {
	s.Landed = 0
	for _, e := range entities {
		pos, ok := ecs.Get[*Position](e)
		if !ok {
			continue
		}
		col, ok := ecs.Get[*Collider](e)
		if !ok {
			continue
		}

		if col.Bottom(pos.Vec) > GroundLevel {
			col.OnGround = false
			continue
		}

		pos.Vec[1] = GroundLevel + col.HalfExtents.Y()
		col.OnGround = true
		s.Landed++

		// Static colliders have no velocity to stop.
		if vel, ok := ecs.Get[*Velocity](e); ok && vel.Vec.Y() < 0 {
			vel.Vec[1] = 0
		}
	}
}

// RegisterSystems adds the movement pipeline to a scheduler in the order it
// must run.
func RegisterSystems(scheduler *ecs.Scheduler) {
	scheduler.Register(&PhysicsSystem{})
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&CollisionSystem{})
}
