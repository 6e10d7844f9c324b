package render

import (
	"fmt"

	"vecerka/internal/item"
	"vecerka/internal/logpanel"
)

// DrawInventory renders the full-screen bag view with a cursor.
func (r *Renderer) DrawInventory(items []*item.Item, capacity, cursor int, status string) {
	r.screen.Clear()
	sw, _ := r.screen.Size()

	r.drawText(0, 0, fmt.Sprintf("INVENTORY  [%d/%d]", len(items), capacity), styleTitle)
	hints := "[j/k] Move  [u] Use  [d] Drop  [i] Close"
	if len(hints) < sw {
		r.drawText(sw-len(hints), 0, hints, styleDim)
	}
	r.drawHLine(1, styleDim)

	if len(items) == 0 {
		r.drawText(2, 2, "(empty)", styleDim)
	}
	for i, it := range items {
		style, pfx := styleText, "  "
		if i == cursor {
			style, pfx = styleHighlight, "► "
		}
		r.drawText(0, 2+i, truncate(fmt.Sprintf("%s[%d] %s %s", pfx, i, it.Icon, it.Name), sw), style)
	}

	y := 3 + len(items)
	r.drawHLine(y, styleDim)
	if cursor >= 0 && cursor < len(items) && items[cursor].Description != "" {
		r.drawText(0, y+1, truncate(items[cursor].Description, sw), styleText)
	}
	if status != "" {
		r.drawText(0, y+2, truncate(status, sw), styleStatus)
	}
}

// DrawPause renders the pause menu.
func (r *Renderer) DrawPause() {
	sw, sh := r.screen.Size()
	lines := []string{"PAUSED", "", "[Esc] Resume", "[q] Quit"}
	top := sh/2 - len(lines)/2
	for i, l := range lines {
		style := styleText
		if i == 0 {
			style = styleTitle
		}
		r.drawText(max((sw-len(l))/2, 0), top+i, l, style)
	}
}

// DrawTablet renders the ordering tablet: the whole catalog, one good per
// line.
func (r *Renderer) DrawTablet(catalog []*item.Item) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	r.drawText(0, 0, "ORDERING TABLET", styleTitle)
	r.drawText(max(sw-len("[r] Close"), 0), 0, "[r] Close", styleDim)
	r.drawHLine(1, styleDim)
	for i, it := range catalog {
		if 2+i >= sh {
			break
		}
		line := fmt.Sprintf("%s %-16s %s", it.Icon, it.Name, it.Description)
		r.drawText(0, 2+i, truncate(line, sw), styleText)
	}
}

// DrawLogPanel renders the newest log entries that fit in the lower half
// of the screen, on top of whatever is already drawn.
func (r *Renderer) DrawLogPanel(entries []logpanel.Entry, filter logpanel.Level) {
	sw, sh := r.screen.Size()
	top := sh / 2
	for y := top; y < sh; y++ {
		for x := 0; x < sw; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleText)
		}
	}
	r.drawHLine(top, styleDim)
	r.drawText(0, top, fmt.Sprintf(" LOG [%s]  [f] Filter  [F1] Close ", filter), styleTitle)

	rows := sh - top - 1
	start := max(len(entries)-rows, 0)
	for i, e := range entries[start:] {
		r.drawText(0, top+1+i, truncate(e.Format(), sw), levelStyle(e.Level))
	}
}
