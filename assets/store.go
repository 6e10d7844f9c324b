package assets

// Glyphs used for the shop's fixtures.
const (
	GlyphPlayer      = "🧍"
	GlyphDoorClosed  = "🚪"
	GlyphDoorOpen    = "⬜"
	GlyphFridgeShut  = "🧊"
	GlyphFridgeOpen  = "❄️"
	GlyphStallClosed = "🏪"
	GlyphStallOpen   = "🛒"
)

// PropDef describes a toggleable fixture placed by the layout legend.
type PropDef struct {
	Name        string
	Prompt      string
	ClosedGlyph string
	OpenGlyph   string
	Blocking    bool // only while closed
}

// Props keyed by legend rune.
var Props = map[rune]PropDef{
	'D': {Name: "Front Door", Prompt: "Open / close the door", ClosedGlyph: GlyphDoorClosed, OpenGlyph: GlyphDoorOpen, Blocking: true},
	'F': {Name: "Fridge", Prompt: "Open / close the fridge", ClosedGlyph: GlyphFridgeShut, OpenGlyph: GlyphFridgeOpen},
	'S': {Name: "Vecerka Stall", Prompt: "Open / close the stall", ClosedGlyph: GlyphStallClosed, OpenGlyph: GlyphStallOpen},
}

// ItemLegend maps a layout rune to the catalog name of the item placed there.
var ItemLegend = map[rune]string{
	'r': "Rohlik",
	'p': "Pivo",
	'c': "Coffee",
	'b': "Banana",
	'm': "Milk",
	'h': "Chips",
	'n': "Newspaper",
	'l': "Lottery Ticket",
	'o': "Mop",
	'k': "Keys",
}

// ShopLayout is the default floor plan. '#' wall, '.' floor, '@' player start.
var ShopLayout = []string{
	"####################",
	"#..r..p....F..F..m.#",
	"#..................#",
	"#..b...h.....c.....#",
	"#..........@.......#",
	"#..n.......S....l..#",
	"#..................#",
	"#.o...........k....#",
	"#########D##########",
}
