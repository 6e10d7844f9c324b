package render

import (
	"sort"

	"vecerka/internal/component"
	"vecerka/internal/ecs"
	"vecerka/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the height reserved below the map for the HUD.
const hudRows = 6

// Renderer draws a session onto a tcell screen. Callers compose a frame from
// DrawFrame, DrawHUD and at most one overlay, then call Show.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  Tiles
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1)),
		tiles:  ShopTiles,
	}
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-hudRows, 1))
}

// CenterOn recenters the camera on tile (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts tile coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// Show flushes the composed frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawFrame clears the screen and renders tiles and entities.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w)
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph := r.tiles.Floor
			if gmap.At(x, y).Kind == gamemap.TileWall {
				glyph = r.tiles.Wall
			}
			r.putGlyph(sx, sy, glyph, styleMap.Foreground(tcell.ColorGray))
		}
	}
}

type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders everything with Renderable + Position, lowest
// RenderOrder first.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})
	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, e.rend.Glyph, styleMap.Foreground(e.rend.FGColor))
	}
}

// putGlyph draws one tile glyph (ASCII pair or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.StringWidth(glyph) >= 2 && len(runes) > 1 && runewidth.RuneWidth(runes[1]) > 0 {
		// Two printable runes such as "··" fill one column each.
		r.screen.SetContent(x, y, runes[0], nil, style)
		r.screen.SetContent(x+1, y, runes[1], nil, style)
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after
// the last cell written. Wide runes advance two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// truncate cuts s to at most width display columns.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
