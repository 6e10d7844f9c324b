package ecs

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	onDespawn  []func(EntityID)
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// Spawn mints a new entity carrying the given components.
func (w *World) Spawn(cs ...Component) EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	for _, c := range cs {
		w.Add(id, c)
	}
	return id
}

// OnDespawn registers fn to run for every entity removed by Despawn, before
// its components are dropped.
func (w *World) OnDespawn(fn func(EntityID)) {
	w.onDespawn = append(w.onDespawn, fn)
}

// Despawn removes the entity and all its components. Despawning a dead or
// unknown entity is a no-op.
func (w *World) Despawn(id EntityID) {
	if !w.alive[id] {
		return
	}
	for _, fn := range w.onDespawn {
		fn(id)
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.alive) }

// Add attaches (or replaces) a component on a live entity.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.components[t][id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
// Result order follows map iteration and is not stable between calls.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Walk the smallest store.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range w.components[smallest] {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t != smallest && !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
