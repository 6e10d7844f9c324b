package render

import (
	"vecerka/internal/logpanel"

	"github.com/gdamore/tcell/v2"
)

// Tiles holds the glyphs used to draw the shop's terrain.
type Tiles struct {
	Wall  string
	Floor string
}

// ShopTiles is the default terrain set.
var ShopTiles = Tiles{
	Wall:  "🧱",
	Floor: "··",
}

// UI styles shared by the HUD and overlays.
var (
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePrompt    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	styleMap       = tcell.StyleDefault.Background(tcell.ColorBlack)
)

// levelStyle colors a log panel line by its severity.
func levelStyle(level logpanel.Level) tcell.Style {
	switch level {
	case logpanel.Warning:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case logpanel.Error:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return styleText
	}
}
