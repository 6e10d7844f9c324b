package render

import (
	"fmt"

	"vecerka/internal/inventory"
)

// HUD is everything drawn below the map each frame.
type HUD struct {
	Prompt   string            // interaction prompt, empty when nothing is in reach
	Cells    []*inventory.Cell // hotbar slots fed by the inventory projection
	Hidden   int               // held items beyond the last slot
	Held     int
	Capacity int
	Messages []string
}

// DrawHUD renders the prompt line, the hotbar and the last messages.
func (r *Renderer) DrawHUD(h HUD) {
	sw, sh := r.screen.Size()
	y := sh - hudRows

	r.drawHLine(y, styleDim)

	if h.Prompt != "" {
		r.drawText(0, y+1, truncate("[e] "+h.Prompt, sw), stylePrompt)
	}

	col := r.drawText(0, y+2, fmt.Sprintf("Bag %d/%d ", h.Held, h.Capacity), styleText)
	for i, c := range h.Cells {
		label := "  "
		if it := c.Item(); it != nil {
			label = it.Icon
			if label == "" {
				label = truncate(it.Name, 2)
			}
		}
		col = r.drawText(col, y+2, fmt.Sprintf("%d[", i+1), styleDim)
		col = r.drawText(col, y+2, label, styleText)
		col = r.drawText(col, y+2, "] ", styleDim)
	}
	if h.Hidden > 0 {
		r.drawText(col, y+2, fmt.Sprintf("+%d", h.Hidden), styleDim)
	}

	// Message log (last 3 messages).
	start := max(len(h.Messages)-3, 0)
	for i, msg := range h.Messages[start:] {
		r.drawText(0, y+3+i, truncate(msg, sw), styleMessage)
	}
}
