package component

import (
	"vecerka/internal/ecs"
	"vecerka/internal/inventory"
)

const CInventory ecs.ComponentType = 6

// Inventory attaches a held-item store to an entity.
type Inventory struct {
	Store *inventory.Store
}

func (Inventory) Type() ecs.ComponentType { return CInventory }
