package inventory

import "vecerka/internal/item"

// Slot is one display position bound to an inventory index.
type Slot interface {
	AddItem(it *item.Item)
	ClearSlot()
}

// Projection mirrors a Store onto a fixed set of slots. Slot i shows item i;
// slots past the item count are cleared, and items past the slot count are
// not shown.
type Projection struct {
	store  *Store
	slots  []Slot
	cancel func()
}

// NewProjection binds slots to store, renders once, and re-renders on every
// store notification until Close.
func NewProjection(store *Store, slots []Slot) *Projection {
	p := &Projection{store: store, slots: slots}
	p.cancel = store.Subscribe(p.Refresh)
	p.Refresh()
	return p
}

// Refresh re-renders every slot from the store's current contents.
func (p *Projection) Refresh() {
	items := p.store.Items()
	for i, slot := range p.slots {
		if i < len(items) {
			slot.AddItem(items[i])
		} else {
			slot.ClearSlot()
		}
	}
}

// Len returns the number of display slots.
func (p *Projection) Len() int { return len(p.slots) }

// Hidden returns how many held items have no slot to show them.
func (p *Projection) Hidden() int {
	if n := p.store.Len() - len(p.slots); n > 0 {
		return n
	}
	return 0
}

// Close stops following the store.
func (p *Projection) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Cell is the Slot the terminal HUD draws from.
type Cell struct {
	item    *item.Item
	renders int
}

// NewCells allocates n empty cells and returns them both as cells and as the
// Slot slice NewProjection expects.
func NewCells(n int) ([]*Cell, []Slot) {
	cells := make([]*Cell, n)
	slots := make([]Slot, n)
	for i := range cells {
		cells[i] = &Cell{}
		slots[i] = cells[i]
	}
	return cells, slots
}

func (c *Cell) AddItem(it *item.Item) {
	c.item = it
	c.renders++
}

func (c *Cell) ClearSlot() {
	c.item = nil
	c.renders++
}

// Item returns the bound item, or nil for an empty slot.
func (c *Cell) Item() *item.Item { return c.item }

// Empty reports whether nothing is bound.
func (c *Cell) Empty() bool { return c.item == nil }

// Renders counts how many times the cell was bound or cleared.
func (c *Cell) Renders() int { return c.renders }
