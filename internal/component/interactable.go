package component

import (
	"vecerka/internal/ecs"
	"vecerka/internal/interact"
	"vecerka/internal/spatial"
)

const CInteractable ecs.ComponentType = 10

// Interactable makes an entity visible to the interaction scanner.
// Handler is a *interact.Pickup, *interact.Toggle, or any other kind.
type Interactable struct {
	Handler interact.Interactable
	Layer   spatial.Layer
}

func (Interactable) Type() ecs.ComponentType { return CInteractable }
