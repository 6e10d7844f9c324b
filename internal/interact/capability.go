// Package interact implements proximity-based interaction: the capability
// contract interactable objects expose, the per-tick scanner that finds the
// current candidate, and the two interactable kinds the shop uses.
package interact

import "vecerka/internal/inventory"

// Action is one of the closed set of ways an interactable can be used.
type Action uint8

const (
	Primary Action = iota
	Secondary
)

func (a Action) String() string {
	switch a {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return "unknown"
}

// Descriptor is what an interactable shows the player.
type Descriptor struct {
	Kind   string // short label for logs and metrics, e.g. "pickup"
	Prompt string
	Labels map[Action]string
}

// Label returns the text for action a, falling back to the prompt.
func (d Descriptor) Label(a Action) string {
	if l, ok := d.Labels[a]; ok && l != "" {
		return l
	}
	return d.Prompt
}

// Interactor is the actor that triggers interactions.
type Interactor interface {
	// Inventory may return nil for actors that cannot hold items.
	Inventory() *inventory.Store
}

// Interactable is anything the player can act on with the interact key.
// Interact reports whether the action took effect.
type Interactable interface {
	Descriptor() Descriptor
	Interact(who Interactor) bool
}
