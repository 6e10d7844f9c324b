package game

// Overlays tracks which full-screen UI is up. Pause freezes the simulation;
// the inventory and tablet only take the controls away from the player.
// At most one of inventory and tablet is open at a time.
type Overlays struct {
	paused    bool
	inventory bool
	tablet    bool
}

// TogglePause flips the pause menu. Pausing closes the other overlays.
func (o *Overlays) TogglePause() bool {
	o.paused = !o.paused
	if o.paused {
		o.inventory = false
		o.tablet = false
	}
	return o.paused
}

// ToggleInventory flips the inventory overlay. Ignored while paused.
func (o *Overlays) ToggleInventory() bool {
	if o.paused {
		return o.inventory
	}
	o.inventory = !o.inventory
	if o.inventory {
		o.tablet = false
	}
	return o.inventory
}

// ToggleTablet flips the ordering tablet. Ignored while paused.
func (o *Overlays) ToggleTablet() bool {
	if o.paused {
		return o.tablet
	}
	o.tablet = !o.tablet
	if o.tablet {
		o.inventory = false
	}
	return o.tablet
}

func (o *Overlays) Paused() bool        { return o.paused }
func (o *Overlays) InventoryOpen() bool { return o.inventory }
func (o *Overlays) TabletOpen() bool    { return o.tablet }

// ControlsEnabled reports whether the player may move and interact.
func (o *Overlays) ControlsEnabled() bool {
	return !o.paused && !o.inventory && !o.tablet
}

// TimeScale is 0 while paused and 1 otherwise.
func (o *Overlays) TimeScale() float64 {
	if o.paused {
		return 0
	}
	return 1
}
