// Package spatial provides the bounded proximity query the interaction
// scanner polls every tick.
package spatial

import (
	"math"

	"vecerka/internal/ecs"
)

// Vec2 is a point on the shop floor in tile units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Layer is a bit mask filtering which entries a query sees.
type Layer uint32

const (
	LayerDefault      Layer = 1 << iota
	LayerInteractable       // goods and fixtures the player can act on
	LayerPlayer

	LayerAll Layer = math.MaxUint32
)

// DefaultCellSize is the grid bucket edge length in tiles.
const DefaultCellSize = 4.0

type cellKey struct{ X, Y int }

type entry struct {
	pos   Vec2
	layer Layer
	cell  cellKey
}

// Grid is a uniform-grid index of entity positions.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cells       map[cellKey][]ecs.EntityID
	entries     map[ecs.EntityID]*entry
}

// NewGrid creates an empty index. A non-positive cellSize uses DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		cells:       make(map[cellKey][]ecs.EntityID),
		entries:     make(map[ecs.EntityID]*entry),
	}
}

func (g *Grid) cellFor(p Vec2) cellKey {
	return cellKey{int(math.Floor(p.X * g.invCellSize)), int(math.Floor(p.Y * g.invCellSize))}
}

// Upsert inserts id or moves it to pos with the given layer.
func (g *Grid) Upsert(id ecs.EntityID, pos Vec2, layer Layer) {
	cell := g.cellFor(pos)
	if e, ok := g.entries[id]; ok {
		if e.cell != cell {
			g.removeFromCell(id, e.cell)
			g.cells[cell] = append(g.cells[cell], id)
		}
		e.pos, e.layer, e.cell = pos, layer, cell
		return
	}
	g.entries[id] = &entry{pos: pos, layer: layer, cell: cell}
	g.cells[cell] = append(g.cells[cell], id)
}

// Remove drops id from the index. Unknown ids are ignored.
func (g *Grid) Remove(id ecs.EntityID) {
	e, ok := g.entries[id]
	if !ok {
		return
	}
	g.removeFromCell(id, e.cell)
	delete(g.entries, id)
}

func (g *Grid) removeFromCell(id ecs.EntityID, cell cellKey) {
	bucket := g.cells[cell]
	for i, other := range bucket {
		if other == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.cells, cell)
		return
	}
	g.cells[cell] = bucket
}

// Len returns the number of indexed entities.
func (g *Grid) Len() int { return len(g.entries) }

// Position returns the indexed position of id.
func (g *Grid) Position(id ecs.EntityID) (Vec2, bool) {
	e, ok := g.entries[id]
	if !ok {
		return Vec2{}, false
	}
	return e.pos, true
}

// QueryRegion writes into out the ids whose layer intersects mask and whose
// position lies within radius of center (inclusive), stopping once out is
// full. It returns the number written and does not allocate. Results come
// in cell-scan order, not sorted by distance.
func (g *Grid) QueryRegion(center Vec2, radius float64, mask Layer, out []ecs.EntityID) int {
	if len(out) == 0 || radius < 0 {
		return 0
	}
	rSq := radius * radius
	lo := g.cellFor(Vec2{center.X - radius, center.Y - radius})
	hi := g.cellFor(Vec2{center.X + radius, center.Y + radius})
	n := 0
	for cy := lo.Y; cy <= hi.Y; cy++ {
		for cx := lo.X; cx <= hi.X; cx++ {
			for _, id := range g.cells[cellKey{cx, cy}] {
				e := g.entries[id]
				if e.layer&mask == 0 || e.pos.DistSq(center) > rSq {
					continue
				}
				out[n] = id
				n++
				if n == len(out) {
					return n
				}
			}
		}
	}
	return n
}
