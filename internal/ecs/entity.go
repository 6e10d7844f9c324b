// Package ecs is the entity registry that hosts every object in the shop:
// the player, goods lying on shelves, and toggleable fixtures.
package ecs

import "strconv"

// EntityID uniquely identifies an entity in the world. IDs are never
// reused within a world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// String renders the ID as "#n" in logs and messages.
func (id EntityID) String() string {
	if id == NilEntity {
		return "#nil"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ComponentType keys a component store. Values are assigned by the
// component package.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
