// Package craft holds the block-game components and systems that run on top of
// the ecs package.
package craft

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/plus3/craftecs/ecs"
)

var (
	PositionType  = ecs.RegisterComponentType("craft.Position")
	VelocityType  = ecs.RegisterComponentType("craft.Velocity")
	ColliderType  = ecs.RegisterComponentType("craft.Collider")
	PlayerType    = ecs.RegisterComponentType("craft.Player")
	InventoryType = ecs.RegisterComponentType("craft.Inventory")
)

// Position is the world position of an entity's center, in blocks.
type Position struct {
	ecs.Owned
	Vec mgl64.Vec3
}

func (*Position) ComponentType() ecs.ComponentType { return PositionType }

// Velocity is in blocks per second.
type Velocity struct {
	ecs.Owned
	Vec mgl64.Vec3
}

func (*Velocity) ComponentType() ecs.ComponentType { return VelocityType }

// Collider is an axis-aligned box centered on the entity's Position.
type Collider struct {
	ecs.Owned
	HalfExtents mgl64.Vec3
	OnGround    bool
}

func (*Collider) ComponentType() ecs.ComponentType { return ColliderType }

// Bottom returns the y coordinate of the box's lower face for the given center.
func (c *Collider) Bottom(center mgl64.Vec3) float64 {
	return center.Y() - c.HalfExtents.Y()
}

type Player struct {
	ecs.Owned
	UUID uuid.UUID
	Name string
}

func (*Player) ComponentType() ecs.ComponentType { return PlayerType }

type ItemStack struct {
	Item  string
	Count int
}

type Inventory struct {
	ecs.Owned
	Items []ItemStack
}

func (*Inventory) ComponentType() ecs.ComponentType { return InventoryType }

// Add puts count items into the first stack holding item, or a new stack.
func (inv *Inventory) Add(item string, count int) {
	for i := range inv.Items {
		if inv.Items[i].Item == item {
			inv.Items[i].Count += count
			return
		}
	}
	inv.Items = append(inv.Items, ItemStack{Item: item, Count: count})
}

// Count returns the number of item held across all stacks.
func (inv *Inventory) Count(item string) int {
	total := 0
	for _, stack := range inv.Items {
		if stack.Item == item {
			total += stack.Count
		}
	}
	return total
}
