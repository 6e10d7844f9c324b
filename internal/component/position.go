package component

import (
	"vecerka/internal/ecs"
	"vecerka/internal/spatial"
)

const CPosition ecs.ComponentType = 1

// Position is a tile coordinate on the shop floor.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Vec returns the tile center in spatial coordinates.
func (p Position) Vec() spatial.Vec2 {
	return spatial.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

const CFacing ecs.ComponentType = 2

// Facing is the direction the entity last tried to move in.
type Facing struct {
	DX, DY int
}

func (Facing) Type() ecs.ComponentType { return CFacing }

// Vec returns the facing as a unit spatial vector.
func (f Facing) Vec() spatial.Vec2 {
	return spatial.Vec2{X: float64(f.DX), Y: float64(f.DY)}
}
