package component

import (
	"vecerka/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable is how an entity looks on the shop floor. Higher RenderOrder
// draws on top.
type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// WithGlyph returns a copy showing glyph instead.
func (r Renderable) WithGlyph(glyph string) Renderable {
	r.Glyph = glyph
	return r
}
