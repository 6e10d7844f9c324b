// Package system holds the per-tick rules that move entities around the shop.
package system

import (
	"vecerka/internal/component"
	"vecerka/internal/ecs"
	"vecerka/internal/gamemap"
	"vecerka/internal/spatial"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveBumped                    // a blocking entity holds the tile
)

// TryMove attempts to step entity id by (dx, dy) on gmap. The entity turns
// to face (dx, dy) whether or not the step succeeds, so the player can face
// a closed door or a shelf without walking into it.
// Returns the outcome and, for MoveBumped, the blocking entity.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	if dx != 0 || dy != 0 {
		w.Add(id, component.Facing{DX: dx, DY: dy})
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == id {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X == nx && otherPos.Y == ny {
			return MoveBumped, other
		}
	}

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// InteractionPoint returns the point the entity reaches toward: its tile
// center pushed reach tiles along its facing. Entities without a facing
// reach their own tile.
func InteractionPoint(w *ecs.World, id ecs.EntityID, reach float64) spatial.Vec2 {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return spatial.Vec2{}
	}
	origin := posComp.(component.Position).Vec()
	fc := w.Get(id, component.CFacing)
	if fc == nil {
		return origin
	}
	return origin.Add(fc.(component.Facing).Vec().Scale(reach))
}
