// Package factory assembles the shop's entities from their components.
package factory

import (
	"log/slog"

	"vecerka/assets"
	"vecerka/internal/component"
	"vecerka/internal/ecs"
	"vecerka/internal/interact"
	"vecerka/internal/inventory"
	"vecerka/internal/item"
	"vecerka/internal/spatial"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y) facing south, holding store.
func NewPlayer(w *ecs.World, x, y int, store *inventory.Store) ecs.EntityID {
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Facing{DX: 0, DY: 1},
		component.Renderable{
			Glyph:       assets.GlyphPlayer,
			FGColor:     tcell.ColorYellow,
			RenderOrder: 10,
		},
		component.Inventory{Store: store},
		component.TagPlayer{},
		component.TagBlocking{},
	)
}

// NewPickup places it on the shelf at (x, y). Goods block the tile so the
// player turns to face them instead of stepping over them. Picking it up
// despawns the entity, which also drops it from grid through the world's
// despawn hook.
func NewPickup(w *ecs.World, grid *spatial.Grid, it *item.Item, x, y int, logger *slog.Logger) ecs.EntityID {
	glyph := "?"
	if it != nil {
		glyph = it.Icon
	}
	id := w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       glyph,
			FGColor:     tcell.ColorGreen,
			RenderOrder: 2,
		},
		component.TagBlocking{},
	)
	p := interact.NewPickup(it, func() { w.Despawn(id) }, orDefault(logger).With("entity", id))
	w.Add(id, component.Interactable{Handler: p, Layer: spatial.LayerInteractable})
	grid.Upsert(id, component.Position{X: x, Y: y}.Vec(), spatial.LayerInteractable)
	return id
}

// NewProp places a toggleable fixture at (x, y). Its animator swaps the
// glyph and, for blocking props, clears the way while open.
func NewProp(w *ecs.World, grid *spatial.Grid, def assets.PropDef, x, y int, logger *slog.Logger) ecs.EntityID {
	id := w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:       def.ClosedGlyph,
			FGColor:     tcell.ColorWhite,
			RenderOrder: 1,
		},
	)
	if def.Blocking {
		w.Add(id, component.TagBlocking{})
	}
	anim := interact.AnimatorFunc(func(cue string) {
		r, ok := w.Get(id, component.CRenderable).(component.Renderable)
		if !ok {
			return
		}
		switch cue {
		case interact.CueOpen:
			w.Add(id, r.WithGlyph(def.OpenGlyph))
			w.Remove(id, component.CTagBlocking)
		case interact.CueClose:
			w.Add(id, r.WithGlyph(def.ClosedGlyph))
			if def.Blocking {
				w.Add(id, component.TagBlocking{})
			}
		}
	})
	t := interact.NewToggle(def.Prompt, anim, orDefault(logger).With("entity", id, "prop", def.Name))
	w.Add(id, component.Interactable{Handler: t, Layer: spatial.LayerInteractable})
	grid.Upsert(id, component.Position{X: x, Y: y}.Vec(), spatial.LayerInteractable)
	return id
}

func orDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
