package interact

import (
	"log/slog"

	"vecerka/internal/item"
)

// Pickup is a good lying in the world. Interacting moves it into the
// interactor's inventory and removes it from the world for good.
type Pickup struct {
	item    *item.Item
	despawn func()
	taken   bool
	logger  *slog.Logger
}

// NewPickup wraps it. despawn is called once after a successful pickup.
func NewPickup(it *item.Item, despawn func(), logger *slog.Logger) *Pickup {
	if logger == nil {
		logger = slog.Default()
	}
	if it == nil {
		logger.Error("pickup has no item assigned")
	}
	return &Pickup{item: it, despawn: despawn, logger: logger}
}

// Item returns the wrapped item.
func (p *Pickup) Item() *item.Item { return p.item }

func (p *Pickup) Descriptor() Descriptor {
	name := "nothing"
	if p.item != nil {
		name = p.item.Name
	}
	prompt := "Pick up " + name
	return Descriptor{
		Kind:   "pickup",
		Prompt: prompt,
		Labels: map[Action]string{Primary: prompt},
	}
}

// Interact adds the item to who's inventory. On failure the world object is
// left untouched.
func (p *Pickup) Interact(who Interactor) bool {
	if p.item == nil || p.taken {
		return false
	}
	var ok bool
	if who != nil {
		if inv := who.Inventory(); inv != nil {
			ok = inv.Add(p.item)
		}
	}
	if !ok {
		p.logger.Info("couldn't add item to inventory", "item", p.item.Name)
		return false
	}
	p.taken = true
	if p.despawn != nil {
		p.despawn()
	}
	return true
}
