// Package gamemap holds the shop's floor plan.
package gamemap

import "fmt"

// GameMap holds the tile grid of the shop floor.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// Placement is a legend rune found on the plan at (X, Y).
type Placement struct {
	Rune rune
	X, Y int
}

// Layout is a parsed floor plan.
type Layout struct {
	Map        *GameMap
	StartX     int
	StartY     int
	Placements []Placement // every non-structural rune, in reading order
}

// Parse reads a plan where '#' is wall, '.' floor, '@' the player start and
// any rune accepted by isLegend an object standing on a floor tile. Rows may
// differ in length; short rows are padded with wall.
func Parse(rows []string, isLegend func(rune) bool) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	l := &Layout{Map: New(width, len(rows)), StartX: -1, StartY: -1}
	for y, row := range rows {
		for x, r := range []rune(row) {
			switch {
			case r == '#':
			case r == '.':
				l.Map.Set(x, y, MakeFloor())
			case r == '@':
				if l.StartX >= 0 {
					return nil, fmt.Errorf("layout row %d: second player start at column %d", y, x)
				}
				l.StartX, l.StartY = x, y
				l.Map.Set(x, y, MakeFloor())
			case isLegend != nil && isLegend(r):
				l.Map.Set(x, y, MakeFloor())
				l.Placements = append(l.Placements, Placement{Rune: r, X: x, Y: y})
			default:
				return nil, fmt.Errorf("layout row %d column %d: unknown rune %q", y, x, r)
			}
		}
	}
	if l.StartX < 0 {
		return nil, fmt.Errorf("layout has no player start '@'")
	}
	return l, nil
}
